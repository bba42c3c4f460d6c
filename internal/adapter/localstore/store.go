package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fitness-planner/internal/adapter"
	"fitness-planner/internal/domain"
)

// Store is the client-only persistence variant: a durable key-indexed record
// store on SQLite. Each record is one row keyed by id with the full document
// serialized as JSON, mirroring the whole-document semantics of the remote
// variant.
type Store struct {
	db *sql.DB
}

// Open creates (or reopens) the local store at the given path.
// ":memory:" gives a throwaway in-memory store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if path == ":memory:" {
		// Every pool connection to ":memory:" is a separate empty database;
		// the schema below only exists on the connection that ran it.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	for _, stmt := range []string{
		"CREATE TABLE IF NOT EXISTS users (id TEXT PRIMARY KEY, doc TEXT NOT NULL)",
		"CREATE TABLE IF NOT EXISTS media (id TEXT PRIMARY KEY, doc TEXT NOT NULL)",
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating tables: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT doc FROM users ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		var user domain.User
		if err := json.Unmarshal([]byte(doc), &user); err != nil {
			return nil, fmt.Errorf("decoding user record: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.insert(ctx, "users", user.ID, user); err != nil {
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// UpdateUser overwrites the whole stored document with the given user.
func (s *Store) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		return domain.User{}, adapter.ErrInvalid
	}
	user.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("encoding user record: %w", err)
	}
	res, err := s.db.ExecContext(ctx, "UPDATE users SET doc = ? WHERE id = ?", string(doc), user.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("updating user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, fmt.Errorf("updating user: %w", err)
	}
	if n == 0 {
		return domain.User{}, adapter.ErrNotFound
	}
	return user, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return adapter.ErrInvalid
	}
	return s.delete(ctx, "users", id)
}

func (s *Store) ListMedia(ctx context.Context) ([]domain.Media, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT doc FROM media ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}
	defer rows.Close()

	var media []domain.Media
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning media: %w", err)
		}
		var m domain.Media
		if err := json.Unmarshal([]byte(doc), &m); err != nil {
			return nil, fmt.Errorf("decoding media record: %w", err)
		}
		media = append(media, m)
	}
	return media, rows.Err()
}

func (s *Store) CreateMedia(ctx context.Context, m domain.Media) (domain.Media, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()

	if err := s.insert(ctx, "media", m.ID, m); err != nil {
		return domain.Media{}, fmt.Errorf("creating media: %w", err)
	}
	return m, nil
}

func (s *Store) DeleteMedia(ctx context.Context, id string) error {
	if id == "" {
		return adapter.ErrInvalid
	}
	return s.delete(ctx, "media", id)
}

func (s *Store) insert(ctx context.Context, table, id string, record any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO "+table+" (id, doc) VALUES (?, ?)", id, string(doc))
	return err
}

func (s *Store) delete(ctx context.Context, table, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if n == 0 {
		return adapter.ErrNotFound
	}
	return nil
}

var _ adapter.Store = (*Store)(nil)
