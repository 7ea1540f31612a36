package spectate

import (
	"strconv"
	"sync"
	"time"
)

// SpinEvent is the public view of one settled spin. No account ID or
// balance; spectators only see the play.
type SpinEvent struct {
	SpinID    string `json:"spin_id"`
	Username  string `json:"username"`
	BetAmount int64  `json:"bet_amount"`
	Result    int    `json:"result"`
	IsWin     bool   `json:"is_win"`
	WinAmount int64  `json:"win_amount"`
	CreatedAt int64  `json:"created_at"`
}

type StreamEvent struct {
	EventID  string    `json:"event_id"`
	Event    string    `json:"event"`
	ServerTS int64     `json:"server_ts"`
	Data     SpinEvent `json:"data"`
}

// Hub keeps a bounded in-memory feed of recent settlements and fans
// them out to connected spectators. Slow subscribers drop events rather
// than block settlement.
type Hub struct {
	mu       sync.Mutex
	nextID   int64
	max      int
	events   []StreamEvent
	watchers map[chan StreamEvent]struct{}
}

func NewHub(max int) *Hub {
	if max <= 0 {
		max = 100
	}
	return &Hub{
		max:      max,
		watchers: map[chan StreamEvent]struct{}{},
	}
}

func (h *Hub) Publish(spin SpinEvent) StreamEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	ev := StreamEvent{
		EventID:  strconv.FormatInt(h.nextID, 10),
		Event:    "spin_settled",
		ServerTS: time.Now().UnixMilli(),
		Data:     spin,
	}
	h.events = append(h.events, ev)
	if len(h.events) > h.max {
		h.events = h.events[len(h.events)-h.max:]
	}
	for ch := range h.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
	return ev
}

// ReplayAfter returns buffered events newer than lastEventID; all of
// them when the ID is empty or unparsable.
func (h *Hub) ReplayAfter(lastEventID string) []StreamEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) == 0 {
		return nil
	}
	last, err := strconv.ParseInt(lastEventID, 10, 64)
	if lastEventID == "" || err != nil {
		out := make([]StreamEvent, len(h.events))
		copy(out, h.events)
		return out
	}
	out := []StreamEvent{}
	for _, ev := range h.events {
		id, err := strconv.ParseInt(ev.EventID, 10, 64)
		if err == nil && id > last {
			out = append(out, ev)
		}
	}
	return out
}

func (h *Hub) Subscribe() chan StreamEvent {
	ch := make(chan StreamEvent, 16)
	h.mu.Lock()
	h.watchers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan StreamEvent) {
	h.mu.Lock()
	if _, ok := h.watchers[ch]; ok {
		delete(h.watchers, ch)
		close(ch)
	}
	h.mu.Unlock()
}
