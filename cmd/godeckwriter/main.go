/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"godeckwriter/internal/config"
	"godeckwriter/internal/crash"
	"godeckwriter/internal/domain"
	"godeckwriter/internal/export"
	applog "godeckwriter/internal/log"
	"godeckwriter/internal/outline"
	"godeckwriter/internal/storage"
	"godeckwriter/internal/theme"
	"godeckwriter/internal/ui"
	"godeckwriter/internal/version"
)

func usage() {
	fmt.Println("Go Deck Writer — slide deck editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  godeckwriter version|-v|--version          Show version")
	fmt.Println("  godeckwriter init <dir> [<title>]          Create a new deck at <dir>")
	fmt.Println("  godeckwriter open <dir>                    Open deck at <dir> and print summary")
	fmt.Println("  godeckwriter save <dir>                    Save deck at <dir> (creates backup)")
	fmt.Println("  godeckwriter import <dir> <file.json>      Replace deck content from exported JSON")
	fmt.Println("  godeckwriter outline <dir> <file.txt>      Build slides from a plain-text outline")
	fmt.Println("  godeckwriter export <dir> [<out.json>]     Write deck JSON (default: exports/deck-export.json)")
	fmt.Println("  godeckwriter pdf <dir> [<out.pdf>]         Render deck to PDF (default: exports/deck.pdf)")
	fmt.Println("  godeckwriter theme-export <dir> <out.zip>  Zip the deck's theme for sharing")
	fmt.Println("  godeckwriter theme-install <dir> <pack.zip> Install a theme pack into the deck")
	fmt.Println("  godeckwriter recents                       List recently opened decks")
	fmt.Println("  godeckwriter ui [<dir>]                    Launch desktop UI (build with -tags fyne for full UI)")
}

func main() {
	// logging settings come from config.yaml with GDW_LOG_* env overrides
	cfg, _ := config.Load()
	applog.Init(applog.FromConfig(cfg.Logging))
	l := applog.WithComponent("cli")
	var dh *storage.DeckHandle
	defer func() { crash.Recover(dh) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Go Deck Writer — slide deck editor")
			fmt.Println(version.String())
			return
		case "init":
			if len(args) < 3 {
				fmt.Println("init requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			p := domain.NewPresentation()
			if len(args) >= 4 {
				p.Title = args[3]
			}
			l.Info("init deck", slog.String("root", abs), slog.String("title", p.Title))
			h, err := storage.InitDeck(abs, p)
			if err != nil {
				l.Error("init failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			dh = h
			fmt.Println("Created deck at", abs)
			return
		case "open":
			if len(args) < 3 {
				fmt.Println("open requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("open deck", slog.String("root", abs))
			h, err := storage.Open(abs)
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			dh = h
			recordRecent(l, h)
			fmt.Printf("Opened deck: %s\n", h.Presentation.Title)
			fmt.Printf("Slides: %d\n", len(h.Presentation.Slides))
			fmt.Println("Root:", h.Root)
			return
		case "save":
			if len(args) < 3 {
				fmt.Println("save requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("save deck", slog.String("root", abs))
			h, err := storage.Open(abs)
			if err != nil {
				l.Error("open before save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			dh = h
			if err := storage.Save(h); err != nil {
				l.Error("save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Saved deck and created a backup of previous manifest (if any).")
			return
		case "import":
			if len(args) < 4 {
				fmt.Println("import requires <dir> and <file.json>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			h, err := storage.Open(abs)
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			dh = h
			data, err := os.ReadFile(args[3])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			p, err := storage.ImportPresentation(data)
			if err != nil {
				l.Error("import rejected", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h.Presentation = p
			if err := storage.Save(h); err != nil {
				l.Error("save after import failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Printf("Imported %d slides into %s\n", len(p.Slides), abs)
			return
		case "outline":
			if len(args) < 4 {
				fmt.Println("outline requires <dir> and <file.txt>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			h, err := storage.Open(abs)
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			dh = h
			data, err := os.ReadFile(args[3])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			p, perrs := outline.Parse(string(data))
			for _, pe := range perrs {
				fmt.Println("Warning:", pe.String())
			}
			h.Presentation.Title = p.Title
			h.Presentation.Slides = p.Slides
			if err := storage.Save(h); err != nil {
				l.Error("save after outline failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Printf("Built %d slides from outline into %s\n", len(p.Slides), abs)
			return
		case "export":
			if len(args) < 3 {
				fmt.Println("export requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			h, err := storage.Open(abs)
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			dh = h
			data, err := storage.ExportPresentation(h.Presentation)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			out := filepath.Join(h.Root, "exports", "deck-export.json")
			if len(args) >= 4 {
				out = args[3]
			}
			if err := storage.WriteExport(out, data); err != nil {
				l.Error("export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Exported deck JSON to", out)
			return
		case "pdf":
			if len(args) < 3 {
				fmt.Println("pdf requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			h, err := storage.Open(abs)
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			dh = h
			out := filepath.Join(h.Root, "exports", "deck.pdf")
			if len(args) >= 4 {
				out = args[3]
			}
			if err := export.ExportDeckPDF(h, out, export.PDFOptions{IncludeSlideNumbers: true}); err != nil {
				l.Error("pdf export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Exported deck PDF to", out)
			return
		case "theme-export":
			if len(args) < 4 {
				fmt.Println("theme-export requires <dir> and <out.zip>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			if err := theme.ExportPack(abs, args[3]); err != nil {
				l.Error("theme export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Exported theme pack to", args[3])
			return
		case "theme-install":
			if len(args) < 4 {
				fmt.Println("theme-install requires <dir> and <pack.zip>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			n, err := theme.InstallPack(abs, args[3])
			if err != nil {
				l.Error("theme install failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Printf("Installed %d theme files into %s\n", n, abs)
			return
		case "recents":
			path, err := storage.DefaultLibraryPath()
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			db, err := storage.InitOrOpenLibrary(path)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			defer func() { _ = db.Close() }()
			recents, err := storage.Recents(context.Background(), db, 10)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if len(recents) == 0 {
				fmt.Println("No recent decks.")
				return
			}
			for _, r := range recents {
				fmt.Printf("%s\t%d slides\t%s\n", r.Title, r.SlideCount, r.Root)
			}
			return
		case "ui":
			var dir string
			if len(args) >= 3 {
				dir = args[2]
			}
			if err := ui.Run(dir); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

// recordRecent notes the deck in the per-user library catalog; failures are
// logged, never fatal.
func recordRecent(l *slog.Logger, dh *storage.DeckHandle) {
	path, err := storage.DefaultLibraryPath()
	if err != nil {
		return
	}
	db, err := storage.InitOrOpenLibrary(path)
	if err != nil {
		l.Warn("library unavailable", slog.Any("err", err))
		return
	}
	defer func() { _ = db.Close() }()
	if err := storage.RecordOpened(context.Background(), db, dh); err != nil {
		l.Warn("record recent deck failed", slog.Any("err", err))
	}
}
