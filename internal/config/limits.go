package config

const (
	// MaxMessageLength is the maximum length of a single chat message.
	MaxMessageLength = 5000

	// MaxUserIDLength bounds user identifiers accepted from request bodies.
	MaxUserIDLength = 255

	// MaxSearchQueryLength bounds knowledge base queries.
	MaxSearchQueryLength = 500

	// DefaultSearchLimit and MaxSearchLimit bound knowledge base result sets.
	DefaultSearchLimit = 5
	MaxSearchLimit     = 50

	// DefaultSessionListLimit is used when /chat/sessions/{user_id} has no limit.
	DefaultSessionListLimit = 10

	// MaxContextHistory is the number of interactions kept per session context.
	MaxContextHistory = 20

	// RecentIntentWindow is how many past interactions feed recent_intents.
	RecentIntentWindow = 5

	// MaxClientSuggestions caps follow-up suggestions shown by the client.
	MaxClientSuggestions = 3

	// SnippetLength is the knowledge search snippet size before the ellipsis.
	SnippetLength = 200
)
