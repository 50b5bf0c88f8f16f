package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateAbsent, StateOf(nil))
	assert.Equal(t, StateCheckedIn, StateOf(&Record{Status: StatusCheckedIn}))
	assert.Equal(t, StatePaused, StateOf(&Record{Status: StatusPaused}))
	assert.Equal(t, StateCheckedOut, StateOf(&Record{Status: StatusCheckedOut}))
}

func TestStateTransitions(t *testing.T) {
	actions := []Action{ActionCheckIn, ActionPause, ActionResume, ActionCheckOut}

	allowed := map[State]map[Action]bool{
		StateAbsent:     {ActionCheckIn: true},
		StateCheckedIn:  {ActionPause: true, ActionCheckOut: true},
		StatePaused:     {ActionResume: true, ActionCheckOut: true},
		StateCheckedOut: {},
	}

	for state, legal := range allowed {
		for _, action := range actions {
			got := state.Allows(action)
			assert.Equal(t, legal[action], got, "state %s action %s", state, action)
		}
	}
}

func TestCheckedOutIsTerminal(t *testing.T) {
	for _, action := range []Action{ActionCheckIn, ActionPause, ActionResume, ActionCheckOut} {
		assert.False(t, StateCheckedOut.Allows(action))
	}
}
