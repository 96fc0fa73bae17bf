package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/bitfiles/internal/config"
)

func TestSettingsDialog_RoundTrip(t *testing.T) {
	app := newTestApp(t)
	settings := config.NewSettings(app)
	w := test.NewWindow(nil)
	defer w.Close()

	settings.SetUseTree(true)
	settings.SetBigRows(false)
	settings.SetLanguage("en")

	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.loadCurrentSettings()
	if !sd.treeCheck.Checked || sd.bigRowsCheck.Checked {
		t.Error("Expected checks to reflect current settings")
	}
	if sd.languageSelect.Selected != "English" {
		t.Errorf("Expected English selected, got %s", sd.languageSelect.Selected)
	}

	dir := t.TempDir()
	sd.downloadDirEntry.SetText(dir)
	sd.treeCheck.SetChecked(false)
	sd.iconsCheck.SetChecked(true)
	sd.bigRowsCheck.SetChecked(true)
	sd.fastRenameCheck.SetChecked(true)
	sd.languageSelect.SetSelected("Português")
	sd.apply()

	if settings.GetDownloadDirectory() != dir {
		t.Errorf("Expected download directory %s, got %s", dir, settings.GetDownloadDirectory())
	}
	if settings.GetUseTree() || !settings.GetShowProgramIcon() || !settings.GetBigRows() || !settings.GetInplaceEdit() {
		t.Error("Expected view flags to be saved")
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected language pt, got %s", settings.GetLanguage())
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := newTestApp(t)
	settings := config.NewSettings(app)
	settings.SetInplaceEdit(false)
	w := test.NewWindow(nil)
	defer w.Close()

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.onSaved = func() { saved = true }
	sd.loadCurrentSettings()
	sd.fastRenameCheck.SetChecked(true)
	sd.onSave(false)

	if saved || settings.GetInplaceEdit() {
		t.Error("Expected cancel to keep settings unchanged")
	}
}
