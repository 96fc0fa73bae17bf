package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/bitfiles/internal/config"
	"github.com/ytget/bitfiles/internal/platform"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	languageSelect   *widget.Select
	treeCheck        *widget.Check
	iconsCheck       *widget.Check
	bigRowsCheck     *widget.Check
	fastRenameCheck  *widget.Check

	languageCodes map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs after the values were stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder(l.GetText(KeyDownloadDirectory))
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.treeCheck = widget.NewCheck(l.GetText(KeyTreeMode), nil)
	sd.iconsCheck = widget.NewCheck(l.GetText(KeyShowIcons), nil)
	sd.bigRowsCheck = widget.NewCheck(l.GetText(KeyBigRows), nil)
	sd.fastRenameCheck = widget.NewCheck(l.GetText(KeyFastRename), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyView)),
		sd.treeCheck,
		sd.iconsCheck,
		sd.bigRowsCheck,
		sd.fastRenameCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.treeCheck.SetChecked(sd.settings.GetUseTree())
	sd.iconsCheck.SetChecked(sd.settings.GetShowProgramIcon())
	sd.bigRowsCheck.SetChecked(sd.settings.GetBigRows())
	sd.fastRenameCheck.SetChecked(sd.settings.GetInplaceEdit())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the dialog values
func (sd *SettingsDialog) apply() {
	if downloadDir := sd.downloadDirEntry.Text; downloadDir != "" {
		if err := platform.CreateDirectoryIfNotExists(downloadDir); err == nil {
			sd.settings.SetDownloadDirectory(downloadDir)
		}
	}

	sd.settings.SetUseTree(sd.treeCheck.Checked)
	sd.settings.SetShowProgramIcon(sd.iconsCheck.Checked)
	sd.settings.SetBigRows(sd.bigRowsCheck.Checked)
	sd.settings.SetInplaceEdit(sd.fastRenameCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
