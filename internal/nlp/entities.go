package nlp

import (
	"regexp"
	"strings"
)

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`),
		regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b`),
	}
	numberPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?(?:%|percent|hours?|days?|weeks?|months?|years?)?\b`)
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	urlPattern    = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")
)

var techKeywords = []string{
	"python", "javascript", "typescript", "react", "node.js", "sql",
	"postgres", "mongodb", "redis", "docker", "kubernetes", "aws",
	"azure", "git", "github", "jira", "salesforce", "api", "rest",
	"graphql", "json", "xml", "html", "css", "tailwind", "bootstrap",
}

// Entity kinds returned by ExtractEntities
const (
	EntityDates        = "dates"
	EntityNumbers      = "numbers"
	EntityEmails       = "emails"
	EntityURLs         = "urls"
	EntityTechnologies = "technologies"
	EntityPeople       = "people"
)

// ExtractEntities pulls dates, numbers, emails, urls and technology names
// out of a message. Technologies match as substrings, so "github" also
// reports "git". People are never detected; the key is always present.
func ExtractEntities(message string) map[string][]string {
	entities := map[string][]string{
		EntityDates:        {},
		EntityNumbers:      {},
		EntityEmails:       {},
		EntityURLs:         {},
		EntityTechnologies: {},
		EntityPeople:       {},
	}

	for _, p := range datePatterns {
		entities[EntityDates] = append(entities[EntityDates], p.FindAllString(message, -1)...)
	}
	entities[EntityNumbers] = append(entities[EntityNumbers], numberPattern.FindAllString(message, -1)...)
	entities[EntityEmails] = append(entities[EntityEmails], emailPattern.FindAllString(message, -1)...)
	entities[EntityURLs] = append(entities[EntityURLs], urlPattern.FindAllString(message, -1)...)

	lower := strings.ToLower(message)
	for _, tech := range techKeywords {
		if strings.Contains(lower, tech) {
			entities[EntityTechnologies] = append(entities[EntityTechnologies], tech)
		}
	}

	return entities
}
