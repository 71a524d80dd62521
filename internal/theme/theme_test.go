/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	root := t.TempDir()
	th, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if th.Font != def.Font || th.TitleSize != def.TitleSize {
		t.Fatalf("expected defaults, got %+v", th)
	}
	if th.TextColor == nil || *th.TextColor != *def.TextColor {
		t.Fatalf("expected default text color, got %+v", th.TextColor)
	}
}

func TestLoadMergesPartialFile(t *testing.T) {
	root := t.TempDir()
	partial := "font: Times\ntitle_size: 48\naccent_color: {r: 200, g: 30, b: 30}\n"
	if err := os.WriteFile(filepath.Join(root, ThemeFileName), []byte(partial), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	th, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if th.Font != "Times" || th.TitleSize != 48 {
		t.Fatalf("expected overrides applied, got %+v", th)
	}
	if th.AccentColor == nil || th.AccentColor.R != 200 {
		t.Fatalf("expected accent override, got %+v", th.AccentColor)
	}
	if th.BodySize != Default().BodySize {
		t.Fatalf("expected untouched defaults to survive, got %+v", th)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ThemeFileName), []byte("font: [broken"), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	if _, err := Load(root); err == nil {
		t.Fatalf("expected error for broken yaml")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	th := Default()
	th.Font = "Courier"
	th.StepSize = 12
	if err := Save(root, th); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Font != "Courier" || got.StepSize != 12 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestExportAndInstallPack(t *testing.T) {
	deck := t.TempDir()
	if err := Save(deck, Default()); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	themeDir := filepath.Join(deck, "theme")
	if err := os.MkdirAll(themeDir, 0o755); err != nil {
		t.Fatalf("mkdir theme: %v", err)
	}
	if err := os.WriteFile(filepath.Join(themeDir, "background.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write background: %v", err)
	}

	zipPath := filepath.Join(deck, "out.zip")
	if err := ExportPack(deck, zipPath); err != nil {
		t.Fatalf("export pack: %v", err)
	}
	st, err := os.Stat(zipPath)
	if err != nil || st.Size() == 0 {
		t.Fatalf("zip not created or empty: %v", err)
	}

	deck2 := t.TempDir()
	installed, err := InstallPack(deck2, zipPath)
	if err != nil {
		t.Fatalf("install pack: %v", err)
	}
	if installed != 2 {
		t.Fatalf("expected 2 installed files, got %d", installed)
	}
	if _, err := os.Stat(filepath.Join(deck2, ThemeFileName)); err != nil {
		t.Fatalf("expected theme.yaml installed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(deck2, "theme", "background.png")); err != nil {
		t.Fatalf("expected background installed: %v", err)
	}

	// Installing again must skip everything that already exists.
	installed, err = InstallPack(deck2, zipPath)
	if err != nil {
		t.Fatalf("second install: %v", err)
	}
	if installed != 0 {
		t.Fatalf("expected 0 installed on re-install, got %d", installed)
	}
}

func TestExportPackWithoutTheme(t *testing.T) {
	deck := t.TempDir()
	zipPath := filepath.Join(t.TempDir(), "empty.zip")
	if err := ExportPack(deck, zipPath); err != nil {
		t.Fatalf("export pack: %v", err)
	}
	if _, err := os.Stat(zipPath); err != nil {
		t.Fatalf("expected manifest-only zip: %v", err)
	}
}
