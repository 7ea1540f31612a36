package spectate

import "testing"

func TestHubReplayAfter(t *testing.T) {
	hub := NewHub(10)
	for i := 0; i < 3; i++ {
		hub.Publish(SpinEvent{SpinID: "s", Result: i})
	}

	all := hub.ReplayAfter("")
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	tail := hub.ReplayAfter("2")
	if len(tail) != 1 || tail[0].Data.Result != 2 {
		t.Fatalf("unexpected tail: %+v", tail)
	}
}

func TestHubBoundsBuffer(t *testing.T) {
	hub := NewHub(2)
	for i := 0; i < 5; i++ {
		hub.Publish(SpinEvent{Result: i})
	}
	all := hub.ReplayAfter("")
	if len(all) != 2 {
		t.Fatalf("expected buffer of 2, got %d", len(all))
	}
	if all[0].Data.Result != 3 || all[1].Data.Result != 4 {
		t.Fatalf("unexpected retained events: %+v", all)
	}
}

func TestHubSubscribeReceives(t *testing.T) {
	hub := NewHub(10)
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	hub.Publish(SpinEvent{SpinID: "abc", Result: 14, IsWin: true})
	select {
	case ev := <-ch:
		if ev.Data.SpinID != "abc" || !ev.Data.IsWin {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHubUnsubscribeCloses(t *testing.T) {
	hub := NewHub(10)
	ch := hub.Subscribe()
	hub.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}
	// Safe to call twice.
	hub.Unsubscribe(ch)
}
