package attendance

// Action is a user-initiated attendance transition. Action names double as
// the audit-log action strings.
type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionCheckOut Action = "check_out"
)

// State is the full daily lifecycle state, including the "no record yet"
// state that exists before the first check-in of the day. Modeling absence
// explicitly keeps the transition table exhaustive instead of scattering
// nil-checks through the calculators.
type State string

const (
	StateAbsent     State = "absent"
	StateCheckedIn  State = State(StatusCheckedIn)
	StatePaused     State = State(StatusPaused)
	StateCheckedOut State = State(StatusCheckedOut)
)

// StateOf maps a possibly missing record to its lifecycle state.
func StateOf(rec *Record) State {
	if rec == nil {
		return StateAbsent
	}
	return State(rec.Status)
}

var transitions = map[State][]Action{
	StateAbsent:     {ActionCheckIn},
	StateCheckedIn:  {ActionPause, ActionCheckOut},
	StatePaused:     {ActionResume, ActionCheckOut},
	StateCheckedOut: {},
}

// Allows reports whether the action is a legal transition from this state.
// Checked-out is terminal for the date; re-check-in requires the next
// calendar date.
func (s State) Allows(a Action) bool {
	for _, allowed := range transitions[s] {
		if allowed == a {
			return true
		}
	}
	return false
}
