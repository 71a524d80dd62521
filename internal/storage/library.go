/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	applog "godeckwriter/internal/log"
	"godeckwriter/internal/version"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	LibraryFileName = "library.sqlite"

	// librarySchemaVersion tracks the local SQLite schema of the catalog.
	// Bump on breaking schema changes and add a migration step.
	librarySchemaVersion = 2
)

// RecentDeck is one catalog row: a deck the user opened, newest first.
type RecentDeck struct {
	Root       string
	Title      string
	SlideCount int
	OpenedAt   time.Time
}

// DefaultLibraryPath returns the per-user location of the library catalog.
func DefaultLibraryPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoDeckWriter")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoDeckWriter")
	default:
		base = filepath.Join(os.Getenv("HOME"), ".local", "share", "godeckwriter")
	}
	if base == "" {
		return "", errors.New("cannot resolve data directory")
	}
	return filepath.Join(base, LibraryFileName), nil
}

// InitOrOpenLibrary opens (creating if needed) the library catalog at path,
// enables WAL mode and ensures the meta/version tables and catalog schema
// exist. The returned *sql.DB is ready for use; callers close it.
func InitOrOpenLibrary(path string) (*sql.DB, error) {
	l := applog.WithOperation(applog.WithComponent("storage"), "library_init").With(
		slog.String("path", path),
	)
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("library path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		l.Error("create library dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create library dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := ensureLibraryMeta(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure meta/version failed", slog.Any("err", err))
		return nil, err
	}
	if err := ensureLibrarySchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure catalog schema failed", slog.Any("err", err))
		return nil, err
	}
	if err := runLibraryMigrations(ctx, db); err != nil {
		_ = db.Close()
		l.Error("run migrations failed", slog.Any("err", err))
		return nil, err
	}

	l.Info("library ready")
	return db, nil
}

func ensureLibraryMeta(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var curSchema int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&curSchema)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`, librarySchemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}

func ensureLibrarySchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS recent_decks (
			root        TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			slide_count INTEGER NOT NULL,
			opened_at   TEXT NOT NULL
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create catalog table: %w", err)
		}
	}
	return nil
}

// runLibraryMigrations applies incremental schema migrations up to
// librarySchemaVersion.
func runLibraryMigrations(ctx context.Context, db *sql.DB) error {
	var cur int
	if err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&cur); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if cur > librarySchemaVersion {
		// Do not downgrade; a newer app owns this file.
		return nil
	}
	for cur < librarySchemaVersion {
		next := cur + 1
		switch next {
		case 2:
			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				return fmt.Errorf("begin migration %d: %w", next, err)
			}
			if _, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_recent_decks_opened ON recent_decks(opened_at);`); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %d stmt failed: %w", next, err)
			}
			if _, err := tx.ExecContext(ctx, `UPDATE version SET schema=?, updated_at=? WHERE id=1`, next, time.Now().UTC().Format(time.RFC3339)); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("migration %d update version: %w", next, err)
			}
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("migration %d commit: %w", next, err)
			}
		default:
			// Unknown future step; stop here.
			return nil
		}
		cur = next
	}
	return nil
}

// RecordOpened upserts a deck into the recents catalog with the current
// timestamp.
func RecordOpened(ctx context.Context, db *sql.DB, dh *DeckHandle) error {
	if dh == nil {
		return errors.New("nil DeckHandle")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := db.ExecContext(ctx, `INSERT INTO recent_decks(root, title, slide_count, opened_at) VALUES(?, ?, ?, ?)
		ON CONFLICT(root) DO UPDATE SET title=excluded.title, slide_count=excluded.slide_count, opened_at=excluded.opened_at`,
		dh.Root, dh.Presentation.Title, len(dh.Presentation.Slides), now)
	if err != nil {
		return fmt.Errorf("record recent deck: %w", err)
	}
	return nil
}

// Recents lists recently opened decks, newest first. limit <= 0 selects a
// default of 10.
func Recents(ctx context.Context, db *sql.DB, limit int) ([]RecentDeck, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.QueryContext(ctx, `SELECT root, title, slide_count, opened_at FROM recent_decks ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recents: %w", err)
	}
	defer rows.Close()

	var out []RecentDeck
	for rows.Next() {
		var rd RecentDeck
		var ts string
		if err := rows.Scan(&rd.Root, &rd.Title, &rd.SlideCount, &ts); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339Nano, ts); perr == nil {
			rd.OpenedAt = t
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

// ForgetDeck removes a deck from the recents catalog, e.g. when its
// directory no longer exists.
func ForgetDeck(ctx context.Context, db *sql.DB, root string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM recent_decks WHERE root=?`, root)
	if err != nil {
		return fmt.Errorf("forget deck: %w", err)
	}
	return nil
}
