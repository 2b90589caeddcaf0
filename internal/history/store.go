// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

// Package history records every override submission locally so operators can
// diff a working configuration against previously saved baselines.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/krallice/azure-tenancy-hub/internal/hubapi"
)

// ErrNotFound indicates the requested snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is one recorded override submission.
type Snapshot struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenantId"`
	SubscriptionID string    `json:"subscriptionId,omitempty"`
	Module         string    `json:"module"`
	Payload        any       `json:"payload"`
	SavedAt        time.Time `json:"savedAt"`
}

// Ref reconstructs the scope the snapshot was saved against.
func (s Snapshot) Ref() hubapi.ScopeRef {
	return hubapi.ScopeRef{TenantID: s.TenantID, SubscriptionID: s.SubscriptionID}
}

// Store keeps snapshots in a local SQLite database.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id              TEXT PRIMARY KEY,
		tenant_id       TEXT NOT NULL,
		subscription_id TEXT NOT NULL DEFAULT '',
		module          TEXT NOT NULL,
		payload         TEXT NOT NULL,
		saved_at        TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_scope
		ON snapshots(tenant_id, subscription_id, module, saved_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores the submitted payload for a scope and module, returning the
// saved snapshot.
func (s *Store) Record(ctx context.Context, ref hubapi.ScopeRef, module string, payload any) (*Snapshot, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	snap := &Snapshot{
		ID:             s.newID(),
		TenantID:       ref.TenantID,
		SubscriptionID: ref.SubscriptionID,
		Module:         module,
		Payload:        payload,
		SavedAt:        time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, tenant_id, subscription_id, module, payload, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.TenantID, snap.SubscriptionID, snap.Module,
		string(encoded), snap.SavedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	return snap, nil
}

// List returns the most recent snapshots for a scope and module, newest
// first. A limit of 0 means no limit.
func (s *Store) List(ctx context.Context, ref hubapi.ScopeRef, module string, limit int) ([]Snapshot, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tenant_id, subscription_id, module, payload, saved_at
		 FROM snapshots
		 WHERE tenant_id = ? AND subscription_id = ? AND module = ?
		 ORDER BY saved_at DESC, id DESC
		 LIMIT ?`,
		ref.TenantID, ref.SubscriptionID, module, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, *snap)
	}
	return snaps, rows.Err()
}

// Get returns one snapshot by id.
func (s *Store) Get(ctx context.Context, id string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, subscription_id, module, payload, saved_at
		 FROM snapshots WHERE id = ?`, id)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return snap, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var snap Snapshot
	var payload, savedAt string
	if err := row.Scan(&snap.ID, &snap.TenantID, &snap.SubscriptionID,
		&snap.Module, &payload, &savedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payload), &snap.Payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return nil, fmt.Errorf("parse saved_at: %w", err)
	}
	snap.SavedAt = ts

	return &snap, nil
}
