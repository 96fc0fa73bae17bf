package ui

import (
	"fmt"
	"image/color"
	"sort"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bitfiles/internal/config"
	"github.com/ytget/bitfiles/internal/download"
	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
	"github.com/ytget/bitfiles/internal/namecell"
	"github.com/ytget/bitfiles/internal/platform"
	"github.com/ytget/bitfiles/internal/taskrun"
)

// FilesView is the main window content: the file list of one download
type FilesView struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	observer     *config.Observer
	localization *Localization
	downloads    *download.Service
	runner       taskrun.Executor
	logger       *logging.Logger

	column *NameColumn

	current      *download.Download
	currentMux   sync.RWMutex
	rows         []model.TreeNode
	collapsed    map[string]bool // downloadID:relPath of collapsed directories
	collapsedMux sync.RWMutex

	list         *widget.List
	pauseBtn     *widget.Button
	statusLabel  *widget.Label
	nameHeader   *widget.Button
	nameSpacer   *canvas.Rectangle
	sizeHeader   *widget.Label
	doneHeader   *widget.Label
	emptyLabel   *widget.Label
	unsubscribe  func()
	lastUIUpdate time.Time
	pendingMux   sync.Mutex
	pending      bool
}

// NewFilesView creates the files view and sets it as the window content
func NewFilesView(window fyne.Window, app fyne.App, settings *config.Settings, observer *config.Observer,
	downloads *download.Service, runner taskrun.Executor, logger *logging.Logger) *FilesView {
	if logger == nil {
		logger = logging.Discard()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	v := &FilesView{
		window:       window,
		app:          app,
		settings:     settings,
		observer:     observer,
		localization: localization,
		downloads:    downloads,
		runner:       runner,
		logger:       logger.Component("ui"),
		collapsed:    make(map[string]bool),
	}

	v.column = &NameColumn{
		Renderer:     namecell.NewRenderer(&namecell.ColumnWidth{}, logger),
		Handler:      namecell.NewHandler(),
		Editor:       namecell.NewEditor(runner, NewDialogNotifier(window, localization), logger),
		Observer:     observer,
		Localization: localization,
		Logger:       logger,
		OnChanged:    v.onRowsChanged,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	app.Settings().SetTheme(NewCompactTheme(observer.BigRows()))

	downloads.SetUpdateCallback(v.onDownloadUpdate)
	runner.SetUpdateCallback(v.onTaskUpdate)
	v.unsubscribe = observer.Subscribe(func() {
		fyne.Do(v.onSettingsChanged)
	})

	v.setupUI()
	return v
}

// Localization returns the view's localization
func (v *FilesView) Localization() *Localization {
	return v.localization
}

// Current returns the shown download, if any
func (v *FilesView) Current() *download.Download {
	v.currentMux.RLock()
	defer v.currentMux.RUnlock()
	return v.current
}

func (v *FilesView) setCurrent(d *download.Download) {
	v.currentMux.Lock()
	v.current = d
	v.currentMux.Unlock()
}

// Rows returns the visible rows
func (v *FilesView) Rows() []model.TreeNode {
	return v.rows
}

// Close detaches the view from the settings observer
func (v *FilesView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// setupUI creates and arranges all UI components
func (v *FilesView) setupUI() {
	v.createMenu()

	settingsBtn := widget.NewButton(IconSettings, v.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	openBtn := widget.NewButton(IconFolder, v.onOpenManifest)
	openBtn.Importance = widget.LowImportance
	v.pauseBtn = widget.NewButton(IconPause, v.onTogglePause)
	v.pauseBtn.Disable()
	v.statusLabel = widget.NewLabel("")
	v.statusLabel.Truncation = fyne.TextTruncateEllipsis

	var leading []fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(24, 24))
		logoImage.FillMode = canvas.ImageFillContain
		leading = append(leading, logoImage)
	}
	leading = append(leading, settingsBtn, openBtn, v.pauseBtn)
	toolbar := container.NewBorder(nil, nil, container.NewHBox(leading...), nil, v.statusLabel)

	v.nameHeader = widget.NewButton(v.localization.GetText(KeyColumnName), v.onNameHeader)
	v.nameHeader.Alignment = widget.ButtonAlignLeading
	v.nameHeader.Importance = widget.LowImportance
	v.nameSpacer = canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	v.sizeHeader = widget.NewLabel(v.localization.GetText(KeyColumnSize))
	v.sizeHeader.Alignment = fyne.TextAlignTrailing
	v.doneHeader = widget.NewLabel(v.localization.GetText(KeyColumnDone))
	v.doneHeader.Alignment = fyne.TextAlignTrailing
	header := container.NewBorder(nil, nil, nil,
		container.NewHBox(fixedWidth(SizeLabelWidth, v.sizeHeader), fixedWidth(PercentLabelWidth, v.doneHeader)),
		container.NewStack(v.nameSpacer, v.nameHeader),
	)

	v.list = widget.NewList(
		func() int { return len(v.rows) },
		v.createRow,
		v.updateRow,
	)
	v.emptyLabel = widget.NewLabel(v.localization.GetText(KeyNoDownload))
	v.emptyLabel.Alignment = fyne.TextAlignCenter

	content := container.NewBorder(
		container.NewVBox(toolbar, widget.NewSeparator(), header),
		nil,
		nil,
		nil,
		container.NewStack(v.list, container.NewCenter(v.emptyLabel)),
	)
	v.window.SetContent(content)
}

func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// createMenu creates the application menu
func (v *FilesView) createMenu() {
	l := v.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeyOpenManifest), v.onOpenManifest),
		fyne.NewMenuItem(l.GetText(KeySaveManifest), v.onSave),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), v.onShowSettings),
	)

	viewItem := func(key string, checked bool, set func(bool)) *fyne.MenuItem {
		item := fyne.NewMenuItem(l.GetText(key), func() { set(!checked) })
		item.Checked = checked
		return item
	}
	viewMenu := fyne.NewMenu(l.GetText(KeyView),
		viewItem(KeyTreeMode, v.observer.TreeMode(), v.settings.SetUseTree),
		viewItem(KeyShowIcons, v.observer.ShowIcon(), v.settings.SetShowProgramIcon),
		viewItem(KeyBigRows, v.observer.BigRows(), v.settings.SetBigRows),
		viewItem(KeyFastRename, v.observer.InplaceEdit(), v.settings.SetInplaceEdit),
	)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	languages := l.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			v.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, languageMenu))
}

// onNameHeader shows the name column menu
func (v *FilesView) onNameHeader() {
	item := fyne.NewMenuItem(v.localization.GetText(KeyFastRename), func() {
		v.settings.SetInplaceEdit(!v.observer.InplaceEdit())
	})
	item.Checked = v.observer.InplaceEdit()
	menu := fyne.NewMenu("", item)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(v.nameHeader)
	widget.ShowPopUpMenuAtPosition(menu, v.window.Canvas(), pos.Add(fyne.NewPos(0, v.nameHeader.Size().Height)))
}

// onLanguageChange handles language change
func (v *FilesView) onLanguageChange(langCode string) {
	v.localization.SetLanguage(langCode)
	v.settings.SetLanguage(langCode)
	v.refreshUITexts()
	v.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (v *FilesView) refreshUITexts() {
	l := v.localization
	v.window.SetTitle(l.GetText(KeyAppTitle))
	v.nameHeader.SetText(l.GetText(KeyColumnName))
	v.sizeHeader.SetText(l.GetText(KeyColumnSize))
	v.doneHeader.SetText(l.GetText(KeyColumnDone))
	v.emptyLabel.SetText(l.GetText(KeyNoDownload))
	v.updateStatus()
	v.list.Refresh()
}

// onSettingsChanged applies view settings that changed in the preferences
func (v *FilesView) onSettingsChanged() {
	v.app.Settings().SetTheme(NewCompactTheme(v.observer.BigRows()))
	v.createMenu()
	v.rebuildRows()
}

// OpenManifest loads a download and shows its files
func (v *FilesView) OpenManifest(path string) error {
	d, err := v.downloads.Open(path)
	if err != nil {
		v.logger.Error().Err(err).Str("manifest", path).Msg("failed to open download")
		return err
	}
	v.setCurrent(d)
	v.settings.SetLastManifest(path)
	v.logger.Info().Str("download", d.Name()).Int("files", len(d.Files())).Msg("download opened")
	v.rebuildRows()
	return nil
}

// onOpenManifest asks for a manifest file
func (v *FilesView) onOpenManifest() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		if err := v.OpenManifest(path); err != nil {
			dialog.ShowInformation(v.localization.GetText(KeyErrorLoading), err.Error(), v.window)
		}
	}, v.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	fd.Show()
}

// onSave writes the shown download back to its manifest
func (v *FilesView) onSave() {
	d := v.Current()
	if d == nil {
		v.showNotification(v.localization.GetText(KeyNoDownload))
		return
	}
	if err := v.downloads.Save(d.ID()); err != nil {
		v.logger.Error().Err(err).Str("download", d.Name()).Msg("failed to save manifest")
		dialog.ShowInformation(v.localization.GetText(KeySaveManifest), err.Error(), v.window)
		return
	}
	v.showNotification(v.localization.GetText(KeyManifestSaved))
}

// onTogglePause pauses or continues the shown download
func (v *FilesView) onTogglePause() {
	d := v.Current()
	if d == nil {
		return
	}
	var err error
	if d.State().IsPaused() {
		err = v.downloads.Resume(d.ID())
	} else {
		err = v.downloads.Pause(d.ID())
	}
	if err != nil {
		v.logger.Warn().Err(err).Str("download", d.Name()).Msg("cannot change download state")
	}
	v.updateStatus()
}

// onShowSettings shows the settings dialog
func (v *FilesView) onShowSettings() {
	ShowSettingsDialog(v.window, v.settings, v.localization, func() {
		v.localization.SetLanguage(v.settings.GetLanguage())
		v.refreshUITexts()
		v.createMenu()
	})
}

func (v *FilesView) collapseKey(relPath string) string {
	d := v.Current()
	if d == nil {
		return relPath
	}
	return d.ID() + ":" + relPath
}

// isExpanded reports whether the directory at relPath shows its children.
// Directories start expanded.
func (v *FilesView) isExpanded(relPath string) bool {
	v.collapsedMux.RLock()
	defer v.collapsedMux.RUnlock()
	return !v.collapsed[v.collapseKey(relPath)]
}

func (v *FilesView) setExpanded(relPath string, expanded bool) {
	v.collapsedMux.Lock()
	if expanded {
		delete(v.collapsed, v.collapseKey(relPath))
	} else {
		v.collapsed[v.collapseKey(relPath)] = true
	}
	v.collapsedMux.Unlock()
}

// rebuildRows recomputes the visible rows. Tree mode lists expanded
// directories and their files, flat mode every file.
func (v *FilesView) rebuildRows() {
	v.rows = nil
	if d := v.Current(); d != nil {
		if v.observer.TreeMode() {
			v.rows = d.Tree().Visible(v.isExpanded)
		} else {
			for _, f := range d.Files() {
				v.rows = append(v.rows, f)
			}
		}
	}
	if len(v.rows) == 0 {
		v.emptyLabel.Show()
	} else {
		v.emptyLabel.Hide()
	}
	v.updateStatus()
	v.list.Refresh()
}

func (v *FilesView) createRow() fyne.CanvasObject {
	row := NewFileRow(v.column, v.isExpanded, v.setExpanded)
	row.SetOnSecondary(v.onRowSecondary)
	return row
}

func (v *FilesView) updateRow(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*FileRow)
	if !ok || id < 0 || id >= len(v.rows) {
		return
	}
	row.Bind(v.rows[id])
	v.list.SetItemHeight(id, row.MinSize().Height)
	v.applyPreferredWidth()
}

// applyPreferredWidth widens the name header to the widest name painted so far
func (v *FilesView) applyPreferredWidth() {
	if pref := float32(v.column.Renderer.Column().Preferred()); pref > v.nameSpacer.MinSize().Width {
		v.nameSpacer.SetMinSize(fyne.NewSize(pref, 0))
		v.nameSpacer.Refresh()
	}
}

// onRowsChanged runs after a cell expanded, collapsed, toggled skipping or renamed
func (v *FilesView) onRowsChanged() {
	v.applyPreferredWidth()
	v.rebuildRows()
}

// onRowSecondary shows the context menu of a row
func (v *FilesView) onRowSecondary(row *FileRow, at fyne.Position) {
	entry := row.Entry()
	if entry == nil {
		return
	}
	l := v.localization
	path := entry.Path()

	items := []*fyne.MenuItem{
		fyne.NewMenuItem(l.GetText(KeyOpen), func() { v.onOpenFile(path) }),
		fyne.NewMenuItem(l.GetText(KeyReveal), func() { v.onRevealFile(path) }),
		fyne.NewMenuItem(l.GetText(KeyCopyPath), func() { v.onCopyPath(path) }),
	}
	if entry.IsLeaf() {
		items = append(items, fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem(l.GetText(KeyRename), row.NameCell().StartRename))
	}
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), v.window.Canvas(), at)
}

// onRevealFile handles revealing a file in the system file manager
func (v *FilesView) onRevealFile(filePath string) {
	v.logger.Debug().Str("path", filePath).Msg("reveal file")
	if err := platform.OpenFileInManager(filePath); err != nil {
		v.logger.Error().Err(err).Str("path", filePath).Msg("failed to reveal file")
		v.showNotification(v.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onOpenFile handles opening a file with the default application
func (v *FilesView) onOpenFile(filePath string) {
	v.logger.Debug().Str("path", filePath).Msg("open file")
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		v.logger.Error().Err(err).Str("path", filePath).Msg("failed to open file")
		v.showNotification(v.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onCopyPath handles copying file path to clipboard
func (v *FilesView) onCopyPath(filePath string) {
	v.app.Clipboard().SetContent(filePath)
	v.showNotification(v.localization.GetText(KeyPathCopied))
}

// showNotification shows a short message that hides itself
func (v *FilesView) showNotification(message string) {
	label := widget.NewLabel(message)
	popup := widget.NewPopUp(label, v.window.Canvas())
	canvasSize := v.window.Canvas().Size()
	popup.Resize(fyne.NewSize(ToastWidth, label.MinSize().Height))
	popup.ShowAtPosition(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}

// onDownloadUpdate runs on watcher goroutines when file progress changed
func (v *FilesView) onDownloadUpdate(d *download.Download) {
	current := v.Current()
	if current == nil || d.ID() != current.ID() {
		return
	}
	v.debouncedUIUpdate()
}

// debouncedUIUpdate refreshes at most once per UIUpdateDebounce
func (v *FilesView) debouncedUIUpdate() {
	v.pendingMux.Lock()
	defer v.pendingMux.Unlock()
	if v.pending {
		return
	}
	v.pending = true

	wait := UIUpdateDebounce - time.Since(v.lastUIUpdate)
	if wait < 0 {
		wait = 0
	}
	time.AfterFunc(wait, func() {
		v.pendingMux.Lock()
		v.pending = false
		v.lastUIUpdate = time.Now()
		v.pendingMux.Unlock()
		fyne.Do(func() {
			v.updateStatus()
			v.list.Refresh()
		})
	})
}

// onTaskUpdate shows background task progress in the status line
func (v *FilesView) onTaskUpdate(task *model.Task) {
	if task.Status.IsFinished() {
		v.logger.Debug().Str("task", task.Name).Str("status", task.Status.String()).Dur("elapsed", task.Elapsed()).Msg("task finished")
	}
	fyne.Do(v.updateStatus)
}

// updateStatus refreshes the pause button and the status line
func (v *FilesView) updateStatus() {
	d := v.Current()
	if d == nil {
		v.pauseBtn.Disable()
		v.statusLabel.SetText("")
		return
	}
	v.pauseBtn.Enable()
	if d.State().IsPaused() {
		v.pauseBtn.SetText(IconPlay)
	} else {
		v.pauseBtn.SetText(IconPause)
	}
	v.statusLabel.SetText(fmt.Sprintf("%s%s%s%s%s / %s (%d%%)",
		d.Name(), MiddleDotSeparator, d.State(), MiddleDotSeparator,
		formatFileSize(d.Downloaded()), formatFileSize(d.Length()),
		progressPercent(d.Downloaded(), d.Length())))
}
