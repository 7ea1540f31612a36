package wheel

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// SpinDuration matches the fixed animation length; completion is a
// timer, not physics.
const SpinDuration = 4 * time.Second

var ErrSpinInProgress = errors.New("spin_in_progress")

// Spinner runs the display timeline for one wheel at a time. A spin
// cannot start while another is animating, cannot be cancelled once
// started, and reports completion exactly once per spin, only after the
// rotation has been applied.
type Spinner struct {
	mu       sync.Mutex
	rotation float64
	spinning bool

	duration time.Duration
	rng      *rand.Rand

	// replaced in tests
	afterFunc func(time.Duration, func())
}

func NewSpinner() *Spinner {
	return &Spinner{
		duration:  SpinDuration,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Rotation returns the current terminal rotation angle.
func (s *Spinner) Rotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

func (s *Spinner) Spinning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spinning
}

// Start applies the rotation for a settled result and schedules the
// completion callback. Returns the new terminal rotation, or
// ErrSpinInProgress when a spin is already animating.
func (s *Spinner) Start(result int, onComplete func(result int)) (float64, error) {
	s.mu.Lock()
	if s.spinning {
		s.mu.Unlock()
		return 0, ErrSpinInProgress
	}
	// 5-8 extra turns for visual variety.
	full := 5 + s.rng.Intn(4)
	next, err := ComputeRotation(s.rotation, result, full)
	if err != nil {
		s.mu.Unlock()
		return 0, err
	}
	s.rotation = next
	s.spinning = true
	s.mu.Unlock()

	var once sync.Once
	s.afterFunc(s.duration, func() {
		once.Do(func() {
			s.mu.Lock()
			s.spinning = false
			s.mu.Unlock()
			if onComplete != nil {
				onComplete(result)
			}
		})
	})
	return next, nil
}
