package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// NotifyChannel - канал LISTEN/NOTIFY, в который пишутся изменения полей.
const NotifyChannel = "tournament_data_changed"

const (
	selectFieldQuery = `SELECT value FROM tournament_data WHERE tournament_id = $1 AND field = $2`
	upsertFieldQuery = `
		INSERT INTO tournament_data (tournament_id, field, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (tournament_id, field)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteFieldsQuery     = `DELETE FROM tournament_data WHERE tournament_id = $1 AND field = ANY($2)`
	deleteTournamentQuery = `DELETE FROM tournament_data WHERE tournament_id = $1`
	notifyQuery           = `SELECT pg_notify($1, $2)`
)

type postgresStore struct {
	db     *sqlx.DB
	dsn    string
	logger *slog.Logger
}

// NewPostgresStore хранит поля в таблице tournament_data (JSONB).
// dsn нужен только для подписки через pq.Listener; пустой dsn отключает Subscribe.
func NewPostgresStore(db *sqlx.DB, dsn string, logger *slog.Logger) TournamentStore {
	return &postgresStore{db: db, dsn: dsn, logger: logger}
}

func (s *postgresStore) Get(ctx context.Context, tournamentID string, field Field) (json.RawMessage, error) {
	if err := checkKey(tournamentID, field); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.db.GetContext(ctx, &raw, selectFieldQuery, tournamentID, string(field))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s for tournament %s: %w", field, tournamentID, err)
	}
	return json.RawMessage(raw), nil
}

func (s *postgresStore) Set(ctx context.Context, tournamentID string, field Field, value json.RawMessage) error {
	if err := checkKey(tournamentID, field); err != nil {
		return err
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %s is not valid JSON", field)
	}

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		// lib/pq кодирует []byte как bytea, поэтому JSONB передаём строкой
		if _, err := tx.ExecContext(ctx, upsertFieldQuery, tournamentID, string(field), string(value)); err != nil {
			return fmt.Errorf("failed to upsert %s for tournament %s: %w", field, tournamentID, err)
		}
		return s.notify(ctx, tx, Change{TournamentID: tournamentID, Field: field})
	})
}

func (s *postgresStore) Delete(ctx context.Context, tournamentID string, fields ...Field) error {
	if err := checkKey(tournamentID, fields...); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, deleteFieldsQuery, tournamentID, pq.Array(names))
		if err != nil {
			return fmt.Errorf("failed to delete fields of tournament %s: %w", tournamentID, err)
		}
		if rowsAffected(result) == 0 {
			return nil
		}
		for _, f := range fields {
			if err := s.notify(ctx, tx, Change{TournamentID: tournamentID, Field: f}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *postgresStore) Clear(ctx context.Context, tournamentID string) error {
	if err := checkKey(tournamentID); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteTournamentQuery, tournamentID); err != nil {
			return fmt.Errorf("failed to clear tournament %s: %w", tournamentID, err)
		}
		return s.notify(ctx, tx, Change{TournamentID: tournamentID})
	})
}

// уведомление уходит при коммите транзакции
func (s *postgresStore) notify(ctx context.Context, exec SQLExecutor, c Change) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if _, err := exec.ExecContext(ctx, notifyQuery, NotifyChannel, string(payload)); err != nil {
		return fmt.Errorf("failed to notify %s: %w", NotifyChannel, err)
	}
	return nil
}

func (s *postgresStore) Subscribe(ctx context.Context, tournamentID string, fn func(Change)) (func(), error) {
	if err := checkKey(tournamentID); err != nil {
		return nil, err
	}
	if s.dsn == "" {
		return nil, ErrSubscribeNotSupported
	}

	listener := pq.NewListener(s.dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			s.logger.Warn("Postgres listener event", slog.Int("event", int(ev)), slog.String("error", err.Error()))
		}
	})
	if err := listener.Listen(NotifyChannel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", NotifyChannel, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-listener.Notify:
				if !ok {
					return
				}
				if n == nil {
					// nil приходит после переподключения, уведомления могли потеряться
					s.logger.Info("Postgres listener reconnected", slog.String("tournament_id", tournamentID))
					continue
				}
				s.dispatch(ctx, tournamentID, n.Extra, fn)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
			_ = listener.Close()
		})
	}, nil
}

func (s *postgresStore) dispatch(ctx context.Context, tournamentID, payload string, fn func(Change)) {
	var c Change
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		s.logger.Warn("Malformed change notification", slog.String("payload", payload), slog.String("error", err.Error()))
		return
	}
	if c.TournamentID != tournamentID {
		return
	}
	if c.Field != "" {
		value, err := s.Get(ctx, tournamentID, c.Field)
		if err != nil {
			s.logger.Error("Failed to load changed field", slog.String("tournament_id", tournamentID),
				slog.String("field", string(c.Field)), slog.String("error", err.Error()))
			return
		}
		c.Value = value
	}
	fn(c)
}
