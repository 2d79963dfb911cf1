package proto

import (
	"context"
	"testing"
	"time"
)

func TestInProcessControllerNotifyThenPrompt(t *testing.T) {
	ch := NewChannel()
	ctrl := NewInProcessController(ch)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		if err := ctrl.Notify(ctx, Notification{Kind: NotifyGoldChanged, Gold: 99}); err != nil {
			done <- err
			return
		}
		idx, err := ctrl.PromptChoice(ctx, PromptChooseNext, []Choice{SkipChoice{}, EndTurnChoice{}})
		if err != nil {
			done <- err
			return
		}
		if idx != 1 {
			t.Errorf("expected reply index 1, got %d", idx)
		}
		done <- nil
	}()

	msg := <-ch.ToClient
	n, ok := msg.(NotificationMessage)
	if !ok || n.Notification.Kind != NotifyGoldChanged {
		t.Fatalf("expected a gold_changed notification first, got %#v", msg)
	}

	msg = <-ch.ToClient
	c, ok := msg.(ChoicesMessage)
	if !ok || c.Prompt != PromptChooseNext || len(c.Choices) != 2 {
		t.Fatalf("expected a 2-choice ChooseNext prompt, got %#v", msg)
	}
	ch.ToEngine <- 1

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("controller goroutine failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for controller goroutine")
	}
}

func TestInProcessControllerClosedChannel(t *testing.T) {
	ch := NewChannel()
	ctrl := NewInProcessController(ch)
	ctx := context.Background()

	errCh := make(chan error, 1)
	go func() {
		_, err := ctrl.PromptChoice(ctx, PromptChooseOne, []Choice{SkipChoice{}})
		errCh <- err
	}()

	<-ch.ToClient
	close(ch.ToEngine)

	select {
	case err := <-errCh:
		if err != ErrChannelClosed {
			t.Fatalf("expected ErrChannelClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for PromptChoice to observe the closed channel")
	}
}

func TestToWireRendersChoicesMessage(t *testing.T) {
	w := ToWire(ChoicesMessage{
		Prompt:  PromptTargetEnemy,
		Choices: []Choice{TargetEnemyChoice{Slot: 0, Enemy: EnemyView{Name: "Cultist"}}},
	})
	if w.Type != "choices" || w.Prompt != "TargetEnemy" {
		t.Fatalf("unexpected wire envelope: %#v", w)
	}
	if len(w.Choices) != 1 || w.Choices[0].Description != "Target Cultist" {
		t.Fatalf("unexpected wire choices: %#v", w.Choices)
	}
}
