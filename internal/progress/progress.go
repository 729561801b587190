package progress

import (
	"math/rand"
	"sync"
	"time"
)

const (
	DefaultInterval  = 150 * time.Millisecond
	DefaultFadeDelay = 300 * time.Millisecond
	ceiling          = 95.0
)

type Snapshot struct {
	Active bool    `json:"active"`
	Value  float64 `json:"value"`
}

// Tracker animates a single progress value toward 95 while work is pending.
// Only one timer is outstanding: Start cancels whatever a previous Start or
// Finish left running.
type Tracker struct {
	Interval  time.Duration
	FadeDelay time.Duration

	mu     sync.Mutex
	active bool
	value  float64
	gen    uint64
	stop   chan struct{}
	fade   *time.Timer
	rnd    *rand.Rand
}

func NewTracker() *Tracker {
	return &Tracker{
		Interval:  DefaultInterval,
		FadeDelay: DefaultFadeDelay,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (t *Tracker) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	if t.fade != nil {
		t.fade.Stop()
		t.fade = nil
	}
}

func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.gen++
	t.active = true
	t.value = 0

	stop := make(chan struct{})
	t.stop = stop
	go t.run(stop, t.gen)
}

func (t *Tracker) run(stop chan struct{}, gen uint64) {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.gen == gen {
				t.value += 5 + t.rnd.Float64()*10
				if t.value > ceiling {
					t.value = ceiling
				}
			}
			t.mu.Unlock()
		}
	}
}

func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.value = 100
	gen := t.gen
	t.fade = time.AfterFunc(t.FadeDelay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		if t.gen == gen {
			t.active = false
			t.value = 0
		}
	})
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{Active: t.active, Value: t.value}
}
