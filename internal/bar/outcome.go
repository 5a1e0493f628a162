package bar

// Kind discriminates the result of a tab operation. Rejections are ordinary
// outcomes, not errors: the conversation continues from the unchanged tab.
type Kind string

const (
	// Success carries a mutated tab and usually an event.
	Success Kind = "success"
	// NotFound means the drink could not be resolved (add) or no tab line
	// matched (remove).
	NotFound Kind = "not_found"
	// LimitExceeded means the quantity or spend cap blocked the add.
	LimitExceeded Kind = "limit_exceeded"
	// ServiceRefused means responsible service declined further alcohol.
	ServiceRefused Kind = "service_refused"
	// EmptyTab means review or close was asked of an empty tab.
	EmptyTab Kind = "empty_tab"
)

// Outcome is what every engine operation hands back to the caller: the
// narration Max speaks, the tab state to persist for the next turn, and at
// most one structured event for listening UIs.
type Outcome struct {
	Kind      Kind
	Narration string
	Tab       *Tab
	Event     any
}
