// Package badger persists the auth session and device preferences in an
// embedded Badger database.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

var (
	_ model.SessionStorage  = (*Store)(nil)
	_ model.PreferenceStore = (*Store)(nil)
)

var (
	sessionKey   = []byte("auth/session")
	activeOrgKey = []byte("prefs/active_org")
)

// Options contains storage parameters.
type Options struct {
	Dir      string
	InMemory bool
}

// Store is a Badger backed SessionStorage and PreferenceStore.
type Store struct {
	db     *badgerdb.DB
	logger *logger.Logger
}

// NewStore opens the database at opts.Dir, or in memory when opts.InMemory is set.
func NewStore(opts Options, logger *logger.Logger) (*Store, error) {
	var bopts badgerdb.Options
	if opts.InMemory {
		bopts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Dir == "" {
			return nil, fmt.Errorf("badger: dir is required")
		}
		bopts = badgerdb.DefaultOptions(opts.Dir)
	}
	bopts.Logger = &badgerLogger{logger: logger}

	db, err := badgerdb.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	logger.Debug("Storage: opened", "dir", opts.Dir, "in_memory", opts.InMemory)

	return &Store{db: db, logger: logger}, nil
}

// Load returns the persisted session or model.ErrNotFound.
func (s *Store) Load(ctx context.Context) (model.Session, error) {
	data, err := s.get(sessionKey)
	if err != nil {
		return model.Session{}, err
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return model.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return sess, nil
}

// Save replaces the persisted session.
func (s *Store) Save(ctx context.Context, session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.set(sessionKey, data)
}

// Clear removes the persisted session.
func (s *Store) Clear(ctx context.Context) error {
	return s.delete(sessionKey)
}

// ActiveOrgID returns the last selected organization or model.ErrNotFound.
func (s *Store) ActiveOrgID(ctx context.Context) (uuid.UUID, error) {
	data, err := s.get(activeOrgKey)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.ParseBytes(data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode active org id: %w", err)
	}
	return id, nil
}

// SetActiveOrgID remembers the selected organization. uuid.Nil forgets it.
func (s *Store) SetActiveOrgID(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return s.delete(activeOrgKey)
	}
	return s.set(activeOrgKey, []byte(id.String()))
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("badger: close db: %w", err)
	}
	return nil
}

func (s *Store) get(key []byte) ([]byte, error) {
	var value []byte

	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badgerdb.ErrKeyNotFound) {
				return model.ErrNotFound
			}
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) set(key, value []byte) error {
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("badger: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key []byte) error {
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("badger: delete %s: %w", key, err)
	}
	return nil
}

// badgerLogger routes Badger's own logs to the app logger.
// Badger is chatty at info level, so everything below error goes to debug.
type badgerLogger struct {
	logger *logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error("Storage: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn("Storage: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug("Storage: " + fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug("Storage: " + fmt.Sprintf(format, args...))
}
