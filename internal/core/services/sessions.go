package services

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/logger"
)

// Ensure SessionPool implements the interface.
var _ driving.SessionPool = (*SessionPool)(nil)

// DefaultMaxSessions bounds how many conversations are kept in memory.
const DefaultMaxSessions = 128

type session struct {
	id        string
	assistant driving.AssistantService
}

// SessionPool keeps the most recently used conversations. The least
// recently used one is forgotten once the pool is full.
type SessionPool struct {
	factory driving.AssistantFactory
	max     int

	mu       sync.Mutex
	order    *list.List
	sessions map[string]*list.Element
}

// NewSessionPool creates a pool that builds assistants with factory.
// max <= 0 means DefaultMaxSessions.
func NewSessionPool(factory driving.AssistantFactory, max int) (*SessionPool, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: assistant factory is required", domain.ErrInvalidInput)
	}
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &SessionPool{
		factory:  factory,
		max:      max,
		order:    list.New(),
		sessions: make(map[string]*list.Element),
	}, nil
}

// Acquire returns the assistant for id, starting a conversation when id is
// empty or unknown.
func (p *SessionPool) Acquire(id string) (string, driving.AssistantService, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if el, ok := p.sessions[id]; ok && id != "" {
		p.order.MoveToFront(el)
		s := el.Value.(*session)
		return s.id, s.assistant, nil
	}

	assistant, err := p.factory()
	if err != nil {
		return "", nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	p.sessions[id] = p.order.PushFront(&session{id: id, assistant: assistant})
	logger.Debug("Started conversation %s", id)

	for p.order.Len() > p.max {
		oldest := p.order.Back()
		p.order.Remove(oldest)
		evicted := oldest.Value.(*session)
		delete(p.sessions, evicted.id)
		logger.Debug("Evicted conversation %s", evicted.id)
	}
	return id, assistant, nil
}

// Drop forgets a conversation.
func (p *SessionPool) Drop(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if el, ok := p.sessions[id]; ok {
		p.order.Remove(el)
		delete(p.sessions, id)
	}
}

// Len returns the number of live conversations.
func (p *SessionPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.order.Len()
}
