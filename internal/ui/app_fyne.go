//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"godeckwriter/internal/config"
	"godeckwriter/internal/crash"
	"godeckwriter/internal/domain"
	"godeckwriter/internal/export"
	applog "godeckwriter/internal/log"
	"godeckwriter/internal/player"
	"godeckwriter/internal/storage"
)

// Run starts the Fyne-based desktop deck editor.
func Run(deckDir string) error {
	cfg, err := config.Load()
	applog.Init(applog.FromConfig(cfg.Logging))
	l := applog.WithComponent("ui")
	l.Info("starting UI")
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
	}

	var dh *storage.DeckHandle
	defer func() { crash.Recover(dh) }()
	tapWindow := time.Duration(cfg.Editor.DoubleTapWindowMs) * time.Millisecond

	var libdb *sql.DB
	if path, perr := storage.DefaultLibraryPath(); perr == nil {
		if db, derr := storage.InitOrOpenLibrary(path); derr == nil {
			libdb = db
		} else {
			l.Warn("library unavailable", slog.Any("err", derr))
		}
	}

	// Fyne picks the variant up from FYNE_THEME at settings load.
	if cfg.General.Theme == "light" || cfg.General.Theme == "dark" {
		if os.Getenv("FYNE_THEME") == "" {
			os.Setenv("FYNE_THEME", cfg.General.Theme)
		}
	}

	fyneApp := app.NewWithID("godeckwriter")
	w := fyneApp.NewWindow(windowTitle(""))
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 1200)
	winH := prefs.IntWithFallback("window.height", 800)
	if winW < 800 {
		winW = 800
	}
	if winH < 600 {
		winH = 600
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	recorder := Recorder(&LogRecorder{})

	selectedID := ""
	dirty := false

	markDirty := func() {
		dirty = true
		status.SetText("Unsaved changes")
	}

	// Slide list (left pane)
	slideLabels := []string{}
	slideIDs := []string{}
	var rebuildEditor func()
	slidesList := widget.NewList(
		func() int { return len(slideLabels) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= 0 && int(i) < len(slideLabels) {
				o.(*widget.Label).SetText(slideLabels[i])
			} else {
				o.(*widget.Label).SetText("")
			}
		},
	)
	refreshSlides := func() {
		slideLabels = slideLabels[:0]
		slideIDs = slideIDs[:0]
		if dh == nil {
			slidesList.Refresh()
			return
		}
		for i, s := range dh.Presentation.Slides {
			slideLabels = append(slideLabels, slideLabel(i, s))
			slideIDs = append(slideIDs, s.ID)
		}
		slidesList.Refresh()
		if idx := dh.Presentation.SlideIndex(selectedID); idx >= 0 {
			slidesList.Select(idx)
		} else {
			slidesList.UnselectAll()
		}
	}
	slidesList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || int(id) >= len(slideIDs) {
			return
		}
		selectedID = slideIDs[id]
		rebuildEditor()
	}

	// Editor (center pane), rebuilt when the selection or template changes.
	editorBox := container.NewVBox(widget.NewLabel("No slide selected"))

	currentSlide := func() (domain.Slide, int, bool) {
		if dh == nil {
			return domain.Slide{}, -1, false
		}
		idx := dh.Presentation.SlideIndex(selectedID)
		if idx < 0 {
			return domain.Slide{}, -1, false
		}
		return dh.Presentation.Slides[idx], idx, true
	}

	applyUpdate := func(f domain.Field, value any) {
		s, idx, ok := currentSlide()
		if !ok {
			return
		}
		updated, uerr := domain.UpdateField(s, f, value)
		if uerr != nil {
			l.Error("update field failed", slog.String("field", string(f)), slog.Any("err", uerr))
			status.SetText(uerr.Error())
			return
		}
		dh.Presentation.Slides[idx] = updated
		markDirty()
		if f == domain.FieldTitle {
			refreshSlides()
		}
	}

	rebuildEditor = func() {
		s, _, ok := currentSlide()
		if !ok {
			editorBox.Objects = []fyne.CanvasObject{widget.NewLabel("No slide selected")}
			editorBox.Refresh()
			return
		}
		fields, ferr := domain.Fields(s.Template)
		if ferr != nil {
			editorBox.Objects = []fyne.CanvasObject{widget.NewLabel(ferr.Error())}
			editorBox.Refresh()
			return
		}
		items := []fyne.CanvasObject{
			widget.NewLabelWithStyle(templateLabel(s.Template), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewSeparator(),
		}
		if fields.Title {
			e := widget.NewEntry()
			e.SetText(s.Content.Title)
			e.OnChanged = func(v string) { applyUpdate(domain.FieldTitle, v) }
			items = append(items, widget.NewLabel("Title"), e)
		}
		if fields.Subtitle {
			e := widget.NewEntry()
			e.SetText(s.Content.Subtitle)
			e.OnChanged = func(v string) { applyUpdate(domain.FieldSubtitle, v) }
			items = append(items, widget.NewLabel("Subtitle"), e)
		}
		if fields.Text {
			e := widget.NewMultiLineEntry()
			e.SetText(s.Content.Text)
			e.OnChanged = func(v string) { applyUpdate(domain.FieldText, v) }
			items = append(items, widget.NewLabel("Text"), e)
		}
		if fields.Image {
			e := widget.NewEntry()
			e.SetPlaceHolder("assets/picture.png")
			e.SetText(s.Content.Image)
			e.OnChanged = func(v string) { applyUpdate(domain.FieldImage, v) }
			clearBtn := widget.NewButton("Clear Image", func() {
				applyUpdate(domain.FieldImage, "")
				rebuildEditor()
			})
			items = append(items, widget.NewLabel("Image"), e, clearBtn)

			fp := domain.Centered()
			if s.Content.ImagePosition != nil {
				fp = s.Content.ImagePosition
			}
			fx := widget.NewSlider(0, 100)
			fx.SetValue(fp.X)
			fy := widget.NewSlider(0, 100)
			fy.SetValue(fp.Y)
			onFocal := func(float64) {
				applyUpdate(domain.FieldImagePosition, domain.ImagePosition{X: fx.Value, Y: fy.Value})
			}
			fx.OnChanged = onFocal
			fy.OnChanged = onFocal
			items = append(items, widget.NewLabel("Focal point X"), fx, widget.NewLabel("Focal point Y"), fy)
		}
		if fields.Steps {
			for i := range s.Content.Steps {
				idx := i
				st := s.Content.Steps[i]
				sub := widget.NewEntry()
				sub.SetText(st.Subtitle)
				sub.OnChanged = func(v string) {
					if cs, csIdx, ok2 := currentSlide(); ok2 {
						if updated, uerr := domain.UpdateStepField(cs, idx, domain.FieldSubtitle, v); uerr == nil {
							dh.Presentation.Slides[csIdx] = updated
							markDirty()
						}
					}
				}
				txt := widget.NewEntry()
				txt.SetText(st.Text)
				txt.OnChanged = func(v string) {
					if cs, csIdx, ok2 := currentSlide(); ok2 {
						if updated, uerr := domain.UpdateStepField(cs, idx, domain.FieldText, v); uerr == nil {
							dh.Presentation.Slides[csIdx] = updated
							markDirty()
						}
					}
				}
				removeBtn := widget.NewButton("Remove", func() {
					if cs, csIdx, ok2 := currentSlide(); ok2 {
						dh.Presentation.Slides[csIdx] = domain.RemoveStep(cs, idx)
						markDirty()
						rebuildEditor()
					}
				})
				items = append(items, widget.NewLabel(fmt.Sprintf("Step %d", i+1)), sub, txt, removeBtn)
			}
			addBtn := widget.NewButton("Add Step", func() {
				cs, csIdx, ok2 := currentSlide()
				if !ok2 {
					return
				}
				updated, aerr := domain.AddStep(cs)
				if aerr != nil {
					status.SetText(aerr.Error())
					return
				}
				dh.Presentation.Slides[csIdx] = updated
				markDirty()
				rebuildEditor()
			})
			items = append(items, addBtn)
		}
		editorBox.Objects = items
		editorBox.Refresh()
	}

	// Deck lifecycle helpers

	recordRecent := func() {
		if libdb == nil || dh == nil {
			return
		}
		if rerr := storage.RecordOpened(context.Background(), libdb, dh); rerr != nil {
			l.Warn("record recent deck failed", slog.Any("err", rerr))
		}
	}

	var showEditor func()
	var showDashboard func()

	setDeck := func(h *storage.DeckHandle) {
		dh = h
		dirty = false
		selectedID = ""
		if len(dh.Presentation.Slides) > 0 {
			selectedID = dh.Presentation.Slides[0].ID
		}
		w.SetTitle(windowTitle(dh.Presentation.Title))
		refreshSlides()
		rebuildEditor()
		recordRecent()
		showEditor()
	}

	openDeckAt := func(path string) {
		h, oerr := storage.Open(path)
		if oerr != nil {
			l.Error("open deck failed", slog.String("root", path), slog.Any("err", oerr))
			dialog.ShowError(oerr, w)
			return
		}
		setDeck(h)
		status.SetText(fmt.Sprintf("Opened deck: %s", path))
	}

	saveDeck := func() {
		if dh == nil {
			return
		}
		if serr := storage.Save(dh); serr != nil {
			l.Error("save failed", slog.Any("err", serr))
			dialog.ShowError(serr, w)
			return
		}
		dirty = false
		l.Info("save completed", slog.String("manifest", dh.ManifestPath))
		status.SetText("Saved deck.")
	}

	if cfg.General.Autosave {
		go func() {
			tick := time.NewTicker(time.Minute)
			defer tick.Stop()
			for range tick.C {
				if dirty && dh != nil {
					fyne.Do(saveDeck)
				}
			}
		}()
	}

	// Slide operations

	showTemplateGallery := func() {
		if dh == nil {
			return
		}
		var d *dialog.CustomDialog
		buttons := []fyne.CanvasObject{}
		for _, tmpl := range domain.Templates() {
			t := tmpl
			buttons = append(buttons, widget.NewButton(templateLabel(t), func() {
				s, serr := domain.NewSlide(t)
				if serr != nil {
					dialog.ShowError(serr, w)
					return
				}
				dh.Presentation.Slides = domain.AppendSlide(dh.Presentation.Slides, s)
				selectedID = s.ID
				markDirty()
				refreshSlides()
				rebuildEditor()
				d.Hide()
			}))
		}
		d = dialog.NewCustom("Add Slide", "Cancel", container.NewVBox(buttons...), w)
		d.Show()
	}

	deleteSelected := func() {
		if dh == nil || selectedID == "" {
			return
		}
		out, newSel := domain.RemoveSlide(dh.Presentation.Slides, selectedID, selectedID)
		dh.Presentation.Slides = out
		selectedID = newSel
		markDirty()
		refreshSlides()
		rebuildEditor()
	}

	clearSlides := func() {
		if dh == nil || len(dh.Presentation.Slides) == 0 {
			return
		}
		dialog.ShowConfirm("Clear Slides", "Remove all slides from this deck?", func(ok bool) {
			if !ok {
				return
			}
			l.Info("clear slides", slog.Int("count", len(dh.Presentation.Slides)))
			dh.Presentation, selectedID = domain.ResetSlides(dh.Presentation)
			markDirty()
			refreshSlides()
			rebuildEditor()
		}, w)
	}

	moveSelected := func(delta int) {
		if dh == nil {
			return
		}
		idx := dh.Presentation.SlideIndex(selectedID)
		if idx < 0 {
			return
		}
		dh.Presentation.Slides = domain.MoveSlide(dh.Presentation.Slides, idx, idx+delta)
		markDirty()
		refreshSlides()
	}

	// Fullscreen playback

	var session *player.Session
	var playWin fyne.Window
	playContent := container.NewStack()

	buildSlideView := func(s domain.Slide) fyne.CanvasObject {
		title := canvas.NewText(s.Content.Title, theme.ForegroundColor())
		title.TextSize = 42
		title.TextStyle = fyne.TextStyle{Bold: true}
		items := []fyne.CanvasObject{title}
		if s.Content.Subtitle != "" {
			sub := canvas.NewText(s.Content.Subtitle, theme.ForegroundColor())
			sub.TextSize = 24
			items = append(items, sub)
		}
		if s.Content.Text != "" {
			items = append(items, widget.NewLabel(s.Content.Text))
		}
		for _, st := range s.Content.Steps {
			items = append(items, widget.NewLabelWithStyle(st.Subtitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
			if st.Text != "" {
				items = append(items, widget.NewLabel(st.Text))
			}
		}
		text := container.NewVBox(items...)
		if s.Content.Image != "" {
			path := s.Content.Image
			if !filepath.IsAbs(path) && dh != nil {
				path = filepath.Join(dh.Root, path)
			}
			img := canvas.NewImageFromFile(path)
			img.FillMode = canvas.ImageFillContain
			return container.NewGridWithColumns(2, text, img)
		}
		return container.NewCenter(text)
	}

	slideCurve := func(p float32) float32 { return float32(player.EaseInOutCubic(float64(p))) }

	refreshPlayback := func() {
		if session == nil || dh == nil {
			return
		}
		idx := session.Current()
		if idx < 0 || idx >= len(dh.Presentation.Slides) {
			return
		}
		view := buildSlideView(dh.Presentation.Slides[idx])
		playContent.Objects = []fyne.CanvasObject{view}
		playContent.Refresh()
		if size := playContent.Size(); size.Width > 0 {
			anim := canvas.NewPositionAnimation(
				fyne.NewPos(size.Width/4, 0), fyne.NewPos(0, 0),
				200*time.Millisecond, view.Move)
			anim.Curve = slideCurve
			anim.Start()
		}
	}

	var stopPlayback func()
	startPlayback := func() {
		if dh == nil || playWin != nil {
			return
		}
		s, ok := player.NewSession(len(dh.Presentation.Slides))
		if !ok {
			status.SetText("Deck has no slides to present.")
			return
		}
		s.SwipeThreshold = cfg.Editor.SwipeThresholdPx
		session = s

		surface := newSwipeSurface(playContent, func(startX, endX float64) {
			if session != nil {
				session.Swipe(startX, endX)
				refreshPlayback()
			}
		})

		playWin = fyneApp.NewWindow(windowTitle(dh.Presentation.Title))
		playWin.SetContent(surface)
		playWin.SetFullScreen(true)
		playWin.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
			if session == nil {
				return
			}
			switch ev.Name {
			case fyne.KeyRight, fyne.KeyDown, fyne.KeySpace, fyne.KeyReturn:
				session.Next()
				refreshPlayback()
			case fyne.KeyLeft, fyne.KeyUp:
				session.Prev()
				refreshPlayback()
			case fyne.KeyEscape:
				stopPlayback()
			}
		})
		playWin.SetOnClosed(func() {
			// Position is discarded: re-entering playback starts at slide 0.
			session = nil
			playWin = nil
		})
		refreshPlayback()
		playWin.Show()
		l.Info("playback started", slog.Int("slides", s.SlideCount()))
	}
	stopPlayback = func() {
		if playWin != nil {
			playWin.Close()
		}
	}
	togglePlayback := func() {
		if playWin == nil {
			startPlayback()
		} else {
			stopPlayback()
		}
	}

	toggleRecording := func() {
		on, terr := recorder.Toggle()
		if terr != nil {
			dialog.ShowError(terr, w)
			return
		}
		if on {
			status.SetText("Recording started.")
		} else {
			status.SetText("Recording stopped.")
		}
	}

	// Double-press gestures. Key-up events are used so OS auto-repeat never
	// reaches the detectors.
	spaceTap := player.NewDoubleTap(tapWindow)
	altTap := player.NewDoubleTap(tapWindow)
	shiftTap := player.NewDoubleTap(tapWindow)
	if dc, ok := w.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			now := time.Now()
			switch ev.Name {
			case fyne.KeySpace:
				if spaceTap.Press(now, false) {
					showTemplateGallery()
				}
			case desktop.KeyAltLeft, desktop.KeyAltRight:
				if altTap.Press(now, false) {
					togglePlayback()
				}
			case desktop.KeyShiftLeft, desktop.KeyShiftRight:
				if shiftTap.Press(now, false) {
					toggleRecording()
				}
			}
		})
	}

	// Layout
	left := container.NewBorder(
		container.NewVBox(widget.NewLabel("Slides"), widget.NewSeparator()),
		container.NewHBox(
			widget.NewButton("Add…", func() { showTemplateGallery() }),
			widget.NewButton("Up", func() { moveSelected(-1) }),
			widget.NewButton("Down", func() { moveSelected(1) }),
			widget.NewButton("Delete", func() { deleteSelected() }),
		),
		nil, nil,
		slidesList,
	)
	editorScroll := container.NewVScroll(editorBox)
	editorContent := container.NewBorder(nil, status, left, nil, editorScroll)

	root := container.NewStack(editorContent)
	w.SetContent(root)

	showEditor = func() {
		root.Objects = []fyne.CanvasObject{editorContent}
		root.Refresh()
	}

	buildDashboard := func() fyne.CanvasObject {
		title := widget.NewLabelWithStyle("Deck Dashboard", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		var recent []storage.RecentDeck
		if libdb != nil {
			if rs, rerr := storage.Recents(context.Background(), libdb, 10); rerr == nil {
				recent = rs
			} else {
				l.Warn("load recents failed", slog.Any("err", rerr))
			}
		}
		recList := widget.NewList(
			func() int { return len(recent) },
			func() fyne.CanvasObject { return widget.NewLabel("") },
			func(i widget.ListItemID, o fyne.CanvasObject) {
				if i >= 0 && int(i) < len(recent) {
					r := recent[i]
					o.(*widget.Label).SetText(fmt.Sprintf("%s (%d slides) — %s", r.Title, r.SlideCount, r.Root))
				} else {
					o.(*widget.Label).SetText("")
				}
			},
		)
		recList.OnSelected = func(id widget.ListItemID) {
			if id < 0 || int(id) >= len(recent) {
				return
			}
			openDeckAt(recent[id].Root)
		}
		header := widget.NewLabel("Recent Decks")
		return container.NewBorder(
			container.NewVBox(title, widget.NewSeparator()),
			nil, nil, nil,
			container.NewBorder(header, nil, nil, nil, recList),
		)
	}
	var dashboard fyne.CanvasObject
	showDashboard = func() {
		if dashboard == nil {
			dashboard = buildDashboard()
		}
		root.Objects = []fyne.CanvasObject{dashboard}
		root.Refresh()
	}

	// Menus
	var closeDeckItem *fyne.MenuItem
	newItem := fyne.NewMenuItem("New Deck…", func() {
		l.Info("menu: new deck")
		fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, derr error) {
			if derr != nil {
				l.Error("new dialog error", slog.Any("err", derr))
				return
			}
			if uri == nil {
				return
			}
			abs := uri.Path()
			h, ierr := storage.InitDeck(abs, domain.NewPresentation())
			if ierr != nil {
				l.Error("init deck failed", slog.Any("err", ierr))
				dialog.ShowError(ierr, w)
				return
			}
			setDeck(h)
			closeDeckItem.Disabled = false
			status.SetText(fmt.Sprintf("Created deck: %s", abs))
		}, w)
		fd.Show()
	})
	openItem := fyne.NewMenuItem("Open Deck…", func() {
		l.Info("menu: open deck")
		fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, derr error) {
			if derr != nil {
				l.Error("open dialog error", slog.Any("err", derr))
				return
			}
			if uri == nil {
				return
			}
			openDeckAt(uri.Path())
			closeDeckItem.Disabled = dh == nil
		}, w)
		fd.Show()
	})
	saveItem := fyne.NewMenuItem("Save", func() {
		l.Info("menu: save")
		saveDeck()
	})
	importItem := fyne.NewMenuItem("Import JSON…", func() {
		if dh == nil {
			return
		}
		fo := dialog.NewFileOpen(func(rc fyne.URIReadCloser, derr error) {
			if derr != nil || rc == nil {
				return
			}
			defer func() { _ = rc.Close() }()
			data, rerr := io.ReadAll(rc)
			if rerr != nil {
				dialog.ShowError(rerr, w)
				return
			}
			p, ierr := storage.ImportPresentation(data)
			if ierr != nil {
				if errors.Is(ierr, storage.ErrInvalidManifest) {
					l.Error("import rejected", slog.Any("err", ierr))
				}
				dialog.ShowError(ierr, w)
				return
			}
			dh.Presentation = p
			selectedID = ""
			if len(p.Slides) > 0 {
				selectedID = p.Slides[0].ID
			}
			markDirty()
			w.SetTitle(windowTitle(p.Title))
			refreshSlides()
			rebuildEditor()
			status.SetText("Imported presentation.")
		}, w)
		fo.Show()
	})
	exportJSONItem := fyne.NewMenuItem("Export JSON", func() {
		if dh == nil {
			return
		}
		data, eerr := storage.ExportPresentation(dh.Presentation)
		if eerr != nil {
			dialog.ShowError(eerr, w)
			return
		}
		out := filepath.Join(dh.Root, "exports", "deck-export.json")
		if werr := storage.WriteExport(out, data); werr != nil {
			dialog.ShowError(werr, w)
			return
		}
		status.SetText(fmt.Sprintf("Exported JSON: %s", out))
	})
	exportPDFItem := fyne.NewMenuItem("Export PDF", func() {
		if dh == nil {
			return
		}
		out := filepath.Join(dh.Root, "exports", "deck.pdf")
		if perr := export.ExportDeckPDF(dh, out, export.PDFOptions{IncludeSlideNumbers: true}); perr != nil {
			l.Error("pdf export failed", slog.Any("err", perr))
			dialog.ShowError(perr, w)
			return
		}
		status.SetText(fmt.Sprintf("Exported PDF: %s", out))
	})
	closeDeckItem = fyne.NewMenuItem("Close Deck", func() {
		if dh == nil {
			return
		}
		l.Info("menu: close deck")
		stopPlayback()
		dh = nil
		selectedID = ""
		dirty = false
		w.SetTitle(windowTitle(""))
		status.SetText("Deck closed.")
		refreshSlides()
		rebuildEditor()
		closeDeckItem.Disabled = true
		dashboard = nil
		showDashboard()
	})
	closeDeckItem.Disabled = true
	newItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl}
	openItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}
	saveItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	closeDeckItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}

	fileMenu := fyne.NewMenu("File", newItem, openItem, saveItem, fyne.NewMenuItemSeparator(), importItem, exportJSONItem, exportPDFItem, fyne.NewMenuItemSeparator(), closeDeckItem)
	slideMenu := fyne.NewMenu("Slide",
		fyne.NewMenuItem("Add Slide…", func() { showTemplateGallery() }),
		fyne.NewMenuItem("Delete Slide", func() { deleteSelected() }),
		fyne.NewMenuItem("Move Up", func() { moveSelected(-1) }),
		fyne.NewMenuItem("Move Down", func() { moveSelected(1) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Slides…", func() { clearSlides() }),
	)
	presentMenu := fyne.NewMenu("Present",
		fyne.NewMenuItem("Start Presentation", func() { startPlayback() }),
		fyne.NewMenuItem("Toggle Recording", func() { toggleRecording() }),
	)
	w.SetMainMenu(fyne.NewMainMenu(fileMenu, slideMenu, presentMenu))

	w.SetOnClosed(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		if dirty {
			l.Warn("window closed with unsaved changes")
		}
		if libdb != nil {
			_ = libdb.Close()
		}
	})

	if deckDir != "" {
		openDeckAt(deckDir)
		closeDeckItem.Disabled = dh == nil
	} else {
		showDashboard()
	}

	w.ShowAndRun()
	return nil
}

// swipeSurface wraps playback content and reports horizontal drags so the
// session can translate them into slide transitions.
type swipeSurface struct {
	widget.BaseWidget
	content fyne.CanvasObject
	onSwipe func(startX, endX float64)
	startX  float64
}

func newSwipeSurface(content fyne.CanvasObject, onSwipe func(startX, endX float64)) *swipeSurface {
	s := &swipeSurface{content: content, onSwipe: onSwipe}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swipeSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

func (s *swipeSurface) MouseDown(e *desktop.MouseEvent) {
	s.startX = float64(e.Position.X)
}

func (s *swipeSurface) MouseUp(e *desktop.MouseEvent) {
	if s.onSwipe != nil {
		s.onSwipe(s.startX, float64(e.Position.X))
	}
}
