package memory

import (
	"context"
	"sync"

	"clientverse/internal/domain/entity"
	"clientverse/internal/domain/repository"
)

// subscription holds at most one undelivered snapshot. A newer snapshot
// replaces an unread one, so slow readers always see the latest state.
type subscription struct {
	mu      sync.Mutex
	pending *entity.ClientSnapshot
	stop    func() bool

	ready  chan struct{}
	done   chan struct{}
	once   sync.Once
	remove func()
}

func newSubscription() *subscription {
	return &subscription{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// watch cancels the subscription when ctx is done.
func (s *subscription) watch(ctx context.Context) {
	stop := context.AfterFunc(ctx, s.Cancel)

	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()
}

func (s *subscription) offer(snapshot *entity.ClientSnapshot) {
	s.mu.Lock()
	s.pending = snapshot
	s.mu.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
}

func (s *subscription) Next() (*entity.ClientSnapshot, error) {
	for {
		select {
		case <-s.done:
			return nil, repository.ErrSubscriptionClosed
		default:
		}

		select {
		case <-s.done:
			return nil, repository.ErrSubscriptionClosed
		case <-s.ready:
			s.mu.Lock()
			snapshot := s.pending
			s.pending = nil
			s.mu.Unlock()

			if snapshot != nil {
				return snapshot, nil
			}
		}
	}
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)

		s.mu.Lock()
		stop := s.stop
		s.pending = nil
		s.mu.Unlock()

		if stop != nil {
			stop()
		}

		if s.remove != nil {
			s.remove()
		}
	})
}
