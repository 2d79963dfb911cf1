// Package mcpbridge adapts internal/run.Run to the MCP tool-call protocol,
// grounded on the teacher's internal/mcp package (GameSession/MCPController/
// PendingDecision/ToolResponse), generalized from tcgx's two-player
// Claude-vs-human duel (TCP listener, claudePlayer split, per-decision-type
// methods) down to a single-player run driven entirely through MCP: there is
// no second player to dial in over a socket, and the engine's one
// PromptChoice method already covers every decision kind the reference
// splits across ChooseAction/ChooseCards/ChooseYesNo.
package mcpbridge

import (
	stdctx "context"
	"sync"

	"github.com/google/uuid"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/proto"
	"github.com/nkessler/spireengine/internal/rng"
	"github.com/nkessler/spireengine/internal/run"
	"github.com/nkessler/spireengine/internal/textlog"
)

// PendingDecision is the decision the run loop is currently blocked on,
// ported from the teacher's identically-named struct.
type PendingDecision struct {
	Prompt  proto.Prompt
	Choices []proto.Choice
}

// Session owns one in-process run, driven entirely by MCP tool calls —
// there is no second, network-connected player the way tcgx's GameSession
// has.
type Session struct {
	// ID tags this run for the MCP client's own bookkeeping (several runs
	// can exist across a server's lifetime even though only one is ever
	// active at a time), the role google/uuid plays in tcgx's own session
	// lifecycle.
	ID string

	controller *Controller

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	log *textlog.MemoryLogger

	mu       sync.Mutex
	gameOver bool
	victory  bool
	runErr   error
}

// NewSession constructs a run for the given seed/character/ascension and
// starts it on a background goroutine, exactly as NewGameSession starts
// duel.Run in its own goroutine — the MCP tool handlers interact with it
// only through pendingCh/responseCh from here on.
func NewSession(seed rng.Seed, characterID data.CharacterID, ascension data.Ascension) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		pendingCh: make(chan *PendingDecision, 1),
		log:       textlog.NewMemoryLogger(),
	}
	sess.controller = &Controller{session: sess, responseCh: make(chan int)}

	r, err := run.NewRun(seed, characterID, ascension, sess.controller)
	if err != nil {
		return nil, err
	}

	go func() {
		victory, err := r.Run(stdctx.Background())
		sess.mu.Lock()
		sess.gameOver = true
		sess.victory = victory
		sess.runErr = err
		sess.mu.Unlock()
		sess.pendingCh <- nil // nil marks the terminal decision
	}()

	return sess, nil
}

// State is the snapshot a tool handler renders back to the caller.
type State struct {
	SessionID     string
	Notifications []proto.Notification
	Pending       *PendingDecision
	GameOver      bool
	Victory       bool
	Err           error
}

// waitForPending blocks until the run either asks for the next choice or
// terminates, then returns the accumulated notification log alongside it —
// the same shape as the teacher's waitForPending/ToolResponse pairing.
func (s *Session) waitForPending() State {
	pending := <-s.pendingCh
	s.currentPending = pending

	notifications := s.log.Drain()

	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		SessionID:     s.ID,
		Notifications: notifications,
		Pending:       pending,
		GameOver:      s.gameOver,
		Victory:       s.victory,
		Err:           s.runErr,
	}
}

// Start blocks until the run's first decision (Neow's blessing) or
// immediate termination.
func (s *Session) Start() State {
	return s.waitForPending()
}

// Choose submits the player's pick for the current pending decision and
// blocks until the next one arrives.
func (s *Session) Choose(index int) (State, bool) {
	if s.currentPending == nil {
		return State{}, false
	}
	s.controller.responseCh <- index
	return s.waitForPending(), true
}

// Peek returns the current state without advancing the run, for a
// read-only status check.
func (s *Session) Peek() State {
	notifications := s.log.Drain()
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		SessionID:     s.ID,
		Notifications: notifications,
		Pending:       s.currentPending,
		GameOver:      s.gameOver,
		Victory:       s.victory,
		Err:           s.runErr,
	}
}
