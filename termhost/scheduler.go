package termhost

import (
	"slices"
	"sync"

	"github.com/ayn2op/grapheditor"
)

// Scheduler is a grapheditor.FrameScheduler driven by the application's
// frame ticker. Callbacks run on the event loop goroutine.
type Scheduler struct {
	mu      sync.Mutex
	next    grapheditor.FrameID
	pending map[grapheditor.FrameID]func()
}

var _ grapheditor.FrameScheduler = (*Scheduler)(nil)

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[grapheditor.FrameID]func())}
}

func (s *Scheduler) RequestFrame(fn func()) grapheditor.FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *Scheduler) CancelFrame(id grapheditor.FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

// Pending returns the number of outstanding requests.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// RunFrame calls every callback requested before it was called, in request
// order, and returns how many ran. Requests made by the callbacks wait for
// the next frame.
func (s *Scheduler) RunFrame() int {
	s.mu.Lock()
	ids := make([]grapheditor.FrameID, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.pending[id])
		delete(s.pending, id)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
