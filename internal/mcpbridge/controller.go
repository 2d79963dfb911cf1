package mcpbridge

import (
	stdctx "context"

	"github.com/nkessler/spireengine/internal/proto"
)

// Controller implements proto.Controller by handing decisions to the
// session's pending channel and blocking on a response channel, ported from
// the teacher's MCPController — simplified to one controller per run since
// this engine has no second, human-driven controller to multiplex against.
type Controller struct {
	session    *Session
	responseCh chan int
}

func (c *Controller) Notify(ctx stdctx.Context, n proto.Notification) error {
	c.session.log.Log(n)
	return nil
}

func (c *Controller) PromptChoice(ctx stdctx.Context, prompt proto.Prompt, choices []proto.Choice) (int, error) {
	c.session.pendingCh <- &PendingDecision{Prompt: prompt, Choices: choices}
	return <-c.responseCh, nil
}

// GameOver is a no-op: the session's own wrapping goroutine (session.go's
// NewSession) is the single source of truth for gameOver/victory state,
// since it also has to cover the non-victory termination paths (an
// UnimplementedError bubbling out of Run) that never call this method at
// all.
func (c *Controller) GameOver(ctx stdctx.Context, victory bool) error {
	return nil
}
