/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"godeckwriter/internal/domain"
)

func TestLibrarySchemaVersionRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), LibraryFileName)
	db, err := InitOrOpenLibrary(path)
	if err != nil {
		t.Fatalf("InitOrOpenLibrary: %v", err)
	}
	defer db.Close()

	var schema int
	if err := db.QueryRow(`SELECT schema FROM version WHERE id=1`).Scan(&schema); err != nil {
		t.Fatalf("read version row: %v", err)
	}
	if schema != librarySchemaVersion {
		t.Fatalf("schema = %d, want %d", schema, librarySchemaVersion)
	}

	// Reopening must not error or downgrade.
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	db2, err := InitOrOpenLibrary(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()
	if err := db2.QueryRow(`SELECT schema FROM version WHERE id=1`).Scan(&schema); err != nil {
		t.Fatalf("read version row after reopen: %v", err)
	}
	if schema != librarySchemaVersion {
		t.Fatalf("schema after reopen = %d", schema)
	}
}

func TestRecordOpenedAndRecents(t *testing.T) {
	path := filepath.Join(t.TempDir(), LibraryFileName)
	db, err := InitOrOpenLibrary(path)
	if err != nil {
		t.Fatalf("InitOrOpenLibrary: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	mkHandle := func(root, title string, slides int) *DeckHandle {
		p := domain.NewPresentation()
		p.Title = title
		for i := 0; i < slides; i++ {
			s, err := domain.NewSlide(domain.TemplateContent)
			if err != nil {
				t.Fatalf("NewSlide: %v", err)
			}
			p.Slides = domain.AppendSlide(p.Slides, s)
		}
		return &DeckHandle{Root: root, ManifestPath: filepath.Join(root, ManifestFileName), Presentation: p}
	}

	if err := RecordOpened(ctx, db, mkHandle("/decks/a", "Alpha", 2)); err != nil {
		t.Fatalf("record a: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := RecordOpened(ctx, db, mkHandle("/decks/b", "Beta", 4)); err != nil {
		t.Fatalf("record b: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	// Re-opening deck a moves it to the front and updates its row.
	if err := RecordOpened(ctx, db, mkHandle("/decks/a", "Alpha v2", 3)); err != nil {
		t.Fatalf("record a again: %v", err)
	}

	recents, err := Recents(ctx, db, 0)
	if err != nil {
		t.Fatalf("recents: %v", err)
	}
	if len(recents) != 2 {
		t.Fatalf("recents count = %d, want 2", len(recents))
	}
	if recents[0].Root != "/decks/a" || recents[0].Title != "Alpha v2" || recents[0].SlideCount != 3 {
		t.Fatalf("front recent = %+v", recents[0])
	}
	if recents[1].Root != "/decks/b" {
		t.Fatalf("second recent = %+v", recents[1])
	}

	if err := ForgetDeck(ctx, db, "/decks/a"); err != nil {
		t.Fatalf("forget: %v", err)
	}
	recents, err = Recents(ctx, db, 0)
	if err != nil {
		t.Fatalf("recents after forget: %v", err)
	}
	if len(recents) != 1 || recents[0].Root != "/decks/b" {
		t.Fatalf("forget did not remove row: %+v", recents)
	}
}

func TestRecentsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), LibraryFileName)
	db, err := InitOrOpenLibrary(path)
	if err != nil {
		t.Fatalf("InitOrOpenLibrary: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		p := domain.NewPresentation()
		dh := &DeckHandle{Root: filepath.Join("/decks", string(rune('a'+i))), Presentation: p}
		if err := RecordOpened(ctx, db, dh); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	recents, err := Recents(ctx, db, 3)
	if err != nil {
		t.Fatalf("recents: %v", err)
	}
	if len(recents) != 3 {
		t.Fatalf("limit ignored: got %d rows", len(recents))
	}
}
