package combat

import "testing"

func TestEffectQueueFIFOOrder(t *testing.T) {
	q := NewEffectQueue()
	q.PushBack(QueuedEffect{Player: &PlayerEffectCall{Target: 1}})
	q.PushBack(QueuedEffect{Player: &PlayerEffectCall{Target: 2}})

	first, ok := q.PopFront()
	if !ok || first.Player.Target != 1 {
		t.Fatalf("expected first effect targeting 1, got %+v ok=%v", first, ok)
	}
	second, ok := q.PopFront()
	if !ok || second.Player.Target != 2 {
		t.Fatalf("expected second effect targeting 2, got %+v ok=%v", second, ok)
	}
	if !q.Empty() {
		t.Error("queue should be empty after draining both effects")
	}
}

func TestEffectQueuePushFrontInterposes(t *testing.T) {
	q := NewEffectQueue()
	q.PushBack(QueuedEffect{Player: &PlayerEffectCall{Target: 1}})
	q.PushFront(QueuedEffect{Player: &PlayerEffectCall{Target: 99}})

	first, _ := q.PopFront()
	if first.Player.Target != 99 {
		t.Errorf("PushFront should interpose ahead of the queued effect, got target %d", first.Player.Target)
	}
}

func TestEffectQueuePopFrontOnEmpty(t *testing.T) {
	q := NewEffectQueue()
	if _, ok := q.PopFront(); ok {
		t.Error("PopFront on empty queue should report ok=false")
	}
}
