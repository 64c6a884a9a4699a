package repositories

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
)

type memoryStore struct {
	mu          sync.RWMutex
	data        map[string]map[Field]json.RawMessage
	subscribers map[string]map[int]func(Change)
	nextSubID   int
}

// NewMemoryStore - хранилище в памяти процесса. Используется в тестах, simulate и локально.
func NewMemoryStore() TournamentStore {
	return &memoryStore{
		data:        make(map[string]map[Field]json.RawMessage),
		subscribers: make(map[string]map[int]func(Change)),
	}
}

func (s *memoryStore) Get(ctx context.Context, tournamentID string, field Field) (json.RawMessage, error) {
	if err := checkKey(tournamentID, field); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[tournamentID][field]
	if !ok {
		return nil, nil
	}
	return slices.Clone(value), nil
}

func (s *memoryStore) Set(ctx context.Context, tournamentID string, field Field, value json.RawMessage) error {
	if err := checkKey(tournamentID, field); err != nil {
		return err
	}
	s.mu.Lock()
	doc, ok := s.data[tournamentID]
	if !ok {
		doc = make(map[Field]json.RawMessage)
		s.data[tournamentID] = doc
	}
	doc[field] = slices.Clone(value)
	subs := s.subscribersLocked(tournamentID)
	s.mu.Unlock()

	notify(subs, Change{TournamentID: tournamentID, Field: field, Value: slices.Clone(value)})
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, tournamentID string, fields ...Field) error {
	if err := checkKey(tournamentID, fields...); err != nil {
		return err
	}
	s.mu.Lock()
	for _, f := range fields {
		delete(s.data[tournamentID], f)
	}
	subs := s.subscribersLocked(tournamentID)
	s.mu.Unlock()

	for _, f := range fields {
		notify(subs, Change{TournamentID: tournamentID, Field: f})
	}
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, tournamentID string) error {
	if err := checkKey(tournamentID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.data, tournamentID)
	subs := s.subscribersLocked(tournamentID)
	s.mu.Unlock()

	notify(subs, Change{TournamentID: tournamentID})
	return nil
}

func (s *memoryStore) Subscribe(ctx context.Context, tournamentID string, fn func(Change)) (func(), error) {
	if err := checkKey(tournamentID); err != nil {
		return nil, err
	}
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	if s.subscribers[tournamentID] == nil {
		s.subscribers[tournamentID] = make(map[int]func(Change))
	}
	s.subscribers[tournamentID][id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers[tournamentID], id)
			s.mu.Unlock()
		})
	}, nil
}

// колбэки вызываются вне блокировки, чтобы подписчик мог читать хранилище
func (s *memoryStore) subscribersLocked(tournamentID string) []func(Change) {
	subs := make([]func(Change), 0, len(s.subscribers[tournamentID]))
	for _, fn := range s.subscribers[tournamentID] {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(Change), c Change) {
	for _, fn := range subs {
		fn(c)
	}
}
