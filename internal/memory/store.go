// README: Per-user conversation memory with a bounded in-process default store.
package memory

import (
	"container/list"
	"context"
	"sync"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance of a conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Store keeps an ordered per-user turn log. A user's log is created lazily on
// first append. Concurrent messages for the same user are not serialized;
// last write wins.
type Store interface {
	History(ctx context.Context, userID string) ([]Turn, error)
	Append(ctx context.Context, userID string, turns ...Turn) error
}

// InMemory is the default Store. It caps the turn count per user (oldest
// dropped) and the user count (least-recently-used user evicted).
type InMemory struct {
	mu       sync.Mutex
	maxTurns int
	maxUsers int
	users    map[string]*list.Element
	order    *list.List // front = most recently used
}

type userLog struct {
	id    string
	turns []Turn
}

// NewInMemory builds a store holding at most maxTurns turns for each of at
// most maxUsers users. Non-positive arguments fall back to 40 and 1000.
func NewInMemory(maxTurns, maxUsers int) *InMemory {
	if maxTurns <= 0 {
		maxTurns = 40
	}
	if maxUsers <= 0 {
		maxUsers = 1000
	}
	return &InMemory{
		maxTurns: maxTurns,
		maxUsers: maxUsers,
		users:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (s *InMemory) History(ctx context.Context, userID string) ([]Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	s.order.MoveToFront(el)
	log := el.Value.(*userLog)
	return append([]Turn(nil), log.turns...), nil
}

func (s *InMemory) Append(ctx context.Context, userID string, turns ...Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.users[userID]
	if !ok {
		el = s.order.PushFront(&userLog{id: userID})
		s.users[userID] = el
		if s.order.Len() > s.maxUsers {
			oldest := s.order.Back()
			s.order.Remove(oldest)
			delete(s.users, oldest.Value.(*userLog).id)
		}
	} else {
		s.order.MoveToFront(el)
	}

	log := el.Value.(*userLog)
	log.turns = append(log.turns, turns...)
	if n := len(log.turns); n > s.maxTurns {
		log.turns = append([]Turn(nil), log.turns[n-s.maxTurns:]...)
	}
	return nil
}

// Users reports how many user logs are currently held. Test helper.
func (s *InMemory) Users() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
