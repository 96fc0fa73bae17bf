package ui

import "testing"

func TestLocalization_Languages(t *testing.T) {
	l := NewLocalization()
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyRenameFailedTitle); got != "Не удалось переименовать" {
		t.Errorf("Expected Russian title, got %s", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected unknown language to be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_Fallback(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself, got %s", got)
	}

	// every key used by the views exists in every language
	keys := []string{
		KeyAppTitle, KeyOpenManifest, KeySaveManifest, KeyPause, KeyContinue, KeyOpen,
		KeyReveal, KeyCopyPath, KeyRename, KeySettings, KeyFile, KeyView, KeyLanguage,
		KeyDownloadDirectory, KeyTreeMode, KeyShowIcons, KeyBigRows, KeyFastRename,
		KeyColumnName, KeyColumnSize, KeyColumnDone, KeySave, KeyCancel, KeyBrowse,
		KeySettingsSaved, KeyManifestSaved, KeyNoDownload, KeyErrorOpeningFile,
		KeyErrorLoading, KeyNameTaken, KeyPathCopied, KeyRenameFailedTitle, KeyRenameFailedText,
	}
	for lang := range l.GetAvailableLanguages() {
		for _, key := range keys {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("%s: missing text for %s", lang, key)
			}
		}
	}
}
