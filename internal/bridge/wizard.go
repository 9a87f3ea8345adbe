package bridge

import (
	"fmt"
	"sync"
)

// wizardState marks what the next DM from a user will be interpreted as.
type wizardState int

const (
	awaitNothing wizardState = iota
	// awaitMergeID: next numeric DM is the user's id on the other platform.
	awaitMergeID
	// awaitDmTargetID: next numeric DM is the chat id DMs should forward to.
	awaitDmTargetID
)

// wizard holds short-lived per-user session markers. Advisory UI state
// only, best-effort and non-durable: losing it (restart) means asking
// the user to restart the flow, never data corruption — every durable
// decision is re-validated against the store.
type wizard struct {
	mu       sync.Mutex
	sessions map[string]wizardState
}

func newWizard() *wizard {
	return &wizard{sessions: make(map[string]wizardState)}
}

func sessionKey(platform string, userID int64) string {
	return fmt.Sprintf("%s:%d", platform, userID)
}

func (w *wizard) set(platform string, userID int64, state wizardState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if state == awaitNothing {
		delete(w.sessions, sessionKey(platform, userID))
		return
	}
	w.sessions[sessionKey(platform, userID)] = state
}

// take returns the pending state and clears it. One message consumes
// one session.
func (w *wizard) take(platform string, userID int64) wizardState {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := sessionKey(platform, userID)
	state, ok := w.sessions[key]
	if !ok {
		return awaitNothing
	}
	delete(w.sessions, key)
	return state
}
