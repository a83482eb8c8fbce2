package pipeline

// State is a step of the sync sequence.
type State int

const (
	StateIdle State = iota
	StateAuthenticating
	StateNavigatingPortfolio
	StateNavigatingHistory
	StateNavigatingCashflow
	StateAggregating
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:                "idle",
	StateAuthenticating:      "authenticating",
	StateNavigatingPortfolio: "navigating_portfolio",
	StateNavigatingHistory:   "navigating_history",
	StateNavigatingCashflow:  "navigating_cashflow",
	StateAggregating:         "aggregating",
	StateDone:                "done",
	StateFailed:              "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// CanTransition reports whether to may follow s.
func (s State) CanTransition(to State) bool {
	if s.Terminal() {
		return false
	}
	if to == StateFailed {
		return true
	}
	return to == s+1
}
