package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/bitfiles/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir     = "download_directory"
	KeyLanguage        = "app_language"
	KeyUseTree         = "files_view_use_tree"
	KeyBigRows         = "files_view_big_rows"
	KeyShowProgramIcon = "name_column_show_program_icon"
	KeyInplaceEdit     = "name_column_inplace_edit"
	KeyLastManifest    = "last_manifest"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultUseTree         = true
	DefaultBigRows         = false
	DefaultShowProgramIcon = true
	DefaultInplaceEdit     = false
	FallbackDownloadDir    = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

func (s *Settings) prefs() fyne.Preferences {
	return s.app.Preferences()
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.prefs().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.prefs().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetUseTree returns whether the file list shows the directory tree.
// When false the list is flat and no twisty is drawn.
func (s *Settings) GetUseTree() bool {
	return s.prefs().BoolWithFallback(KeyUseTree, DefaultUseTree)
}

// SetUseTree sets whether the file list shows the directory tree
func (s *Settings) SetUseTree(useTree bool) {
	s.prefs().SetBool(KeyUseTree, useTree)
}

// GetBigRows returns whether rows are tall and names wrap
func (s *Settings) GetBigRows() bool {
	return s.prefs().BoolWithFallback(KeyBigRows, DefaultBigRows)
}

// SetBigRows sets whether rows are tall and names wrap
func (s *Settings) SetBigRows(big bool) {
	s.prefs().SetBool(KeyBigRows, big)
}

// GetShowProgramIcon returns whether the name column draws file-type thumbnails
func (s *Settings) GetShowProgramIcon() bool {
	return s.prefs().BoolWithFallback(KeyShowProgramIcon, DefaultShowProgramIcon)
}

// SetShowProgramIcon sets whether the name column draws file-type thumbnails
func (s *Settings) SetShowProgramIcon(show bool) {
	s.prefs().SetBool(KeyShowProgramIcon, show)
}

// GetInplaceEdit returns whether names can be renamed inline
func (s *Settings) GetInplaceEdit() bool {
	return s.prefs().BoolWithFallback(KeyInplaceEdit, DefaultInplaceEdit)
}

// SetInplaceEdit sets whether names can be renamed inline
func (s *Settings) SetInplaceEdit(enabled bool) {
	s.prefs().SetBool(KeyInplaceEdit, enabled)
}

// GetLastManifest returns the manifest opened last, or ""
func (s *Settings) GetLastManifest() string {
	return s.prefs().String(KeyLastManifest)
}

// SetLastManifest remembers the manifest opened last
func (s *Settings) SetLastManifest(path string) {
	s.prefs().SetString(KeyLastManifest, path)
}
