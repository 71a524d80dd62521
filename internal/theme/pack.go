/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * Licensed under the Apache License, Version 2.0.
 */

package theme

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "godeckwriter/internal/log"
)

// ExportPack zips the deck's theme.yaml and theme/ directory (backgrounds,
// extra assets) into a single .zip for sharing between decks. The archive
// gets a small manifest file at the root named themepack.manifest.txt for
// quick human inspection. A deck without a theme still produces an archive
// with only the manifest.
func ExportPack(deckRoot string, destZipPath string) error {
	l := applog.WithOperation(applog.WithComponent("theme"), "export").With(slog.String("deck", deckRoot))
	if strings.TrimSpace(deckRoot) == "" {
		return errors.New("deckRoot is required")
	}
	if strings.TrimSpace(destZipPath) == "" {
		return errors.New("destZipPath is required")
	}

	if err := os.MkdirAll(filepath.Dir(destZipPath), 0o755); err != nil {
		return fmt.Errorf("ensure zip dir: %w", err)
	}
	// On Windows, remove destination if present before create
	_ = os.Remove(destZipPath)

	zf, err := os.Create(destZipPath)
	if err != nil {
		return fmt.Errorf("create zip: %w", err)
	}
	defer func() { _ = zf.Close() }()
	zw := zip.NewWriter(zf)
	defer func() { _ = zw.Close() }()

	manifest := fmt.Sprintf("Go Deck Writer Theme Pack\nCreated: %s\nDeck: %s\n\nContents mirror the deck's theme.yaml and /theme directory.\n",
		time.Now().Format(time.RFC3339), deckRoot)
	w, err := zw.Create("themepack.manifest.txt")
	if err != nil {
		return fmt.Errorf("add manifest: %w", err)
	}
	if _, err := w.Write([]byte(manifest)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	added := 0
	addFile := func(path, zipName string) error {
		fw, err := zw.Create(zipName)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		if _, err := io.Copy(fw, f); err != nil {
			return err
		}
		added++
		return nil
	}

	if _, err := os.Stat(filepath.Join(deckRoot, ThemeFileName)); err == nil {
		if err := addFile(filepath.Join(deckRoot, ThemeFileName), ThemeFileName); err != nil {
			l.Error("zip build failed", slog.Any("err", err))
			return fmt.Errorf("build zip: %w", err)
		}
	}

	themeDir := filepath.Join(deckRoot, "theme")
	if _, err := os.Stat(themeDir); err == nil {
		err := filepath.Walk(themeDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(deckRoot, path)
			if err != nil {
				return err
			}
			return addFile(path, filepath.ToSlash(rel))
		})
		if err != nil {
			l.Error("zip build failed", slog.Any("err", err))
			return fmt.Errorf("build zip: %w", err)
		}
	}

	l.Info("theme pack exported", slog.Int("files", added), slog.String("zip", destZipPath))
	return nil
}

// InstallPack extracts the given .zip pack into the deck. theme.yaml lands at
// the deck root, everything else under theme/. Existing files are not
// overwritten; if a file already exists, it is skipped. Returns the count of
// files installed (skipped files are not counted).
func InstallPack(deckRoot string, packZipPath string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("theme"), "install").With(slog.String("deck", deckRoot))
	if strings.TrimSpace(deckRoot) == "" {
		return 0, errors.New("deckRoot is required")
	}
	if strings.TrimSpace(packZipPath) == "" {
		return 0, errors.New("packZipPath is required")
	}
	if err := os.MkdirAll(filepath.Join(deckRoot, "theme"), 0o755); err != nil {
		return 0, fmt.Errorf("ensure theme dir: %w", err)
	}

	r, err := zip.OpenReader(packZipPath)
	if err != nil {
		return 0, fmt.Errorf("open pack: %w", err)
	}
	defer func() { _ = r.Close() }()

	installed := 0
	for _, f := range r.File {
		name := f.Name
		if name == "themepack.manifest.txt" {
			continue
		}
		targetRel := name
		if targetRel != ThemeFileName && !strings.HasPrefix(targetRel, "theme/") {
			targetRel = filepath.ToSlash(filepath.Join("theme", targetRel))
		}
		targetPath := filepath.Join(deckRoot, filepath.FromSlash(targetRel))
		if _, err := os.Stat(targetPath); err == nil {
			l.Warn("skip existing file", slog.String("path", targetPath))
			continue
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(targetPath, 0o755); err != nil {
				return installed, err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return installed, err
		}
		rc, err := f.Open()
		if err != nil {
			return installed, err
		}
		out, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			_ = rc.Close()
			return installed, err
		}
		if _, err := io.Copy(out, rc); err != nil {
			_ = out.Close()
			_ = rc.Close()
			return installed, err
		}
		_ = out.Close()
		_ = rc.Close()
		installed++
	}
	l.Info("theme pack installed", slog.Int("files", installed))
	return installed, nil
}
