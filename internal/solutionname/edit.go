package solutionname

// ActionKind enumerates the outcomes of an edit to the solution name field.
type ActionKind int

const (
	// ActionNone leaves the stored value untouched.
	ActionNone ActionKind = iota
	// ActionPersist stores Action.Value.
	ActionPersist
)

func (k ActionKind) String() string {
	switch k {
	case ActionPersist:
		return "persist"
	default:
		return "none"
	}
}

// Action is the decision produced for a single edit.
type Action struct {
	Kind  ActionKind
	Value string
}

// Decide compares the current stored value with the text the user committed.
// Unchanged text yields ActionNone. Anything else is sanitized and persisted,
// even when the sanitized form equals the current value.
func Decide(current, edited string) Action {
	if edited == current {
		return Action{Kind: ActionNone}
	}
	return Action{Kind: ActionPersist, Value: Sanitize(edited)}
}
