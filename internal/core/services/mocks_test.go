package services

import (
	"context"
	"errors"
	"sync"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

// mockEventPublisher records published events.
type mockEventPublisher struct {
	mu     sync.Mutex
	events []domain.ReservationEvent
	err    error
}

func (m *mockEventPublisher) Publish(_ context.Context, event domain.ReservationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

func (m *mockEventPublisher) Close() error { return nil }

func (m *mockEventPublisher) types() []domain.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]domain.EventType, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type)
	}
	return types
}

// failingReservationStore loads its seed and fails every save.
type failingReservationStore struct {
	seed    []domain.Reservation
	loadErr error
}

var errDiskFull = errors.New("disk full")

func (f *failingReservationStore) Load(_ context.Context) ([]domain.Reservation, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.seed, nil
}

func (f *failingReservationStore) Save(_ context.Context, _ []domain.Reservation) error {
	return errDiskFull
}

func (f *failingReservationStore) Location() string { return "failing" }

// scriptedLLM replays canned completions in order and records every prompt.
type scriptedLLM struct {
	mu          sync.Mutex
	completions []string
	streams     [][]string
	streamErr   error
	err         error
	prompts     []string
	options     []driven.GenerateOptions
	closed      int
}

func (m *scriptedLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	m.options = append(m.options, opts)
	if m.err != nil {
		return "", m.err
	}
	if len(m.completions) == 0 {
		return "", errors.New("no scripted completion left")
	}
	next := m.completions[0]
	m.completions = m.completions[1:]
	return next, nil
}

func (m *scriptedLLM) Stream(_ context.Context, prompt string, opts driven.GenerateOptions) (driven.CompletionStream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	m.options = append(m.options, opts)
	if m.err != nil {
		return nil, m.err
	}
	var fragments []string
	if len(m.streams) > 0 {
		fragments = m.streams[0]
		m.streams = m.streams[1:]
	}
	return &sliceStream{fragments: fragments, err: m.streamErr, onClose: func() {
		m.mu.Lock()
		m.closed++
		m.mu.Unlock()
	}}, nil
}

func (m *scriptedLLM) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	prompt := ""
	if len(messages) > 0 {
		prompt = messages[len(messages)-1].Content
	}
	return m.Generate(ctx, prompt, driven.GenerateOptions{MaxTokens: opts.MaxTokens, Temperature: opts.Temperature})
}

func (m *scriptedLLM) ModelName() string            { return "scripted" }
func (m *scriptedLLM) Ping(_ context.Context) error { return nil }
func (m *scriptedLLM) Close() error                 { return nil }

func (m *scriptedLLM) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func (m *scriptedLLM) prompt(i int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prompts[i]
}

// sliceStream is a CompletionStream over fixed fragments.
type sliceStream struct {
	fragments []string
	pos       int
	current   string
	err       error
	onClose   func()
}

func (s *sliceStream) Next() bool {
	if s.pos >= len(s.fragments) {
		return false
	}
	s.current = s.fragments[s.pos]
	s.pos++
	return true
}

func (s *sliceStream) Current() string { return s.current }
func (s *sliceStream) Err() error      { return s.err }

func (s *sliceStream) Close() error {
	if s.onClose != nil {
		s.onClose()
	}
	return nil
}

// mockPromptStore serves overrides and falls back to not found.
type mockPromptStore struct {
	prompts map[string]string
	reloads int
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", domain.ErrNotFound
}

func (m *mockPromptStore) Reload() { m.reloads++ }

// mockAIValidator records the settings it was asked to validate.
type mockAIValidator struct {
	llmErr  error
	checked *domain.LLMSettings
}

func (m *mockAIValidator) ValidateLLM(settings *domain.LLMSettings) error {
	m.checked = settings
	return m.llmErr
}
