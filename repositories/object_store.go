package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/Dosada05/cup-organizer/storage"
)

const jsonContentType = "application/json"

type objectStore struct {
	objects storage.ObjectStore
	prefix  string
}

// NewObjectStore хранит каждое поле отдельным объектом <prefix>/<tournament>/<field>.json.
// Подписки не поддерживаются.
func NewObjectStore(objects storage.ObjectStore, prefix string) TournamentStore {
	return &objectStore{objects: objects, prefix: strings.Trim(prefix, "/")}
}

func (s *objectStore) key(tournamentID string, field Field) string {
	return path.Join(s.prefix, tournamentID, string(field)+".json")
}

func (s *objectStore) Get(ctx context.Context, tournamentID string, field Field) (json.RawMessage, error) {
	if err := checkKey(tournamentID, field); err != nil {
		return nil, err
	}
	body, err := s.objects.Get(ctx, s.key(tournamentID, field))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s for tournament %s: %w", field, tournamentID, err)
	}
	return json.RawMessage(body), nil
}

func (s *objectStore) Set(ctx context.Context, tournamentID string, field Field, value json.RawMessage) error {
	if err := checkKey(tournamentID, field); err != nil {
		return err
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", field)
	}
	return s.objects.Put(ctx, s.key(tournamentID, field), jsonContentType, value)
}

func (s *objectStore) Delete(ctx context.Context, tournamentID string, fields ...Field) error {
	if err := checkKey(tournamentID, fields...); err != nil {
		return err
	}
	for _, f := range fields {
		if err := s.objects.Delete(ctx, s.key(tournamentID, f)); err != nil {
			return err
		}
	}
	return nil
}

func (s *objectStore) Clear(ctx context.Context, tournamentID string) error {
	if err := checkKey(tournamentID); err != nil {
		return err
	}
	keys, err := s.objects.List(ctx, path.Join(s.prefix, tournamentID)+"/")
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.objects.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

func (s *objectStore) Subscribe(ctx context.Context, tournamentID string, fn func(Change)) (func(), error) {
	return nil, ErrSubscribeNotSupported
}
