package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"elevatehub/internal/domain/models"
)

type renderer struct {
	out io.Writer
}

func newRenderer(out io.Writer, noColor bool) *renderer {
	if noColor {
		color.NoColor = true
	}
	return &renderer{out: out}
}

func (r *renderer) banner(url string, online bool) {
	status := color.New(color.FgGreen).Sprint("online")
	if !online {
		status = color.New(color.FgRed).Sprint("offline, answering locally")
	}
	fmt.Fprintln(r.out, color.New(color.FgHiBlack).Sprintf("ElevateHub assistant at %s (%s)", url, status))
	fmt.Fprintln(r.out, color.New(color.FgHiBlack).Sprint("Type /help for commands."))
}

func (r *renderer) message(m models.Message) {
	label := color.New(color.FgCyan, color.Bold).Sprint("you ›")
	if m.Sender == models.SenderBot {
		label = color.New(color.FgGreen, color.Bold).Sprint("bot ›")
		if src, _ := m.Metadata.String("source"); strings.HasSuffix(src, "local") {
			label = color.New(color.FgYellow, color.Bold).Sprint("bot (offline) ›")
		}
	}
	fmt.Fprintf(r.out, "%s %s\n", label, m.Content)
}

func (r *renderer) suggestions(items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(r.out, color.New(color.FgHiBlack).Sprint("Suggestions (use /suggest <n>):"))
	for i, s := range items {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, s)
	}
}

func (r *renderer) quickActions(actions []models.QuickAction) {
	fmt.Fprintln(r.out, color.New(color.FgHiBlack).Sprint("Quick actions (use /action <n>):"))
	for i, a := range actions {
		fmt.Fprintf(r.out, "  %d. %s %s\n", i+1, color.New(color.Bold).Sprint(a.Label), color.New(color.FgHiBlack).Sprint(a.Description))
	}
}

func (r *renderer) info(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *renderer) errorf(format string, args ...interface{}) {
	fmt.Fprintln(r.out, color.New(color.FgRed).Sprintf(format, args...))
}

func (r *renderer) settings(s models.JSONMap, unsaved bool) {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(r.out, "  %-22s %v\n", k, s[k])
	}
	if unsaved {
		fmt.Fprintln(r.out, color.New(color.FgYellow).Sprint("  (unsaved changes, /save to keep them)"))
	}
}
