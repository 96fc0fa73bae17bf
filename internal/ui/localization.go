package ui

import "github.com/ytget/bitfiles/internal/namecell"

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyOpenManifest      = "open_manifest"
	KeySaveManifest      = "save_manifest"
	KeyPause             = "pause"
	KeyContinue          = "continue"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyCopyPath          = "copy_path"
	KeyRename            = "rename"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyView              = "view"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyTreeMode          = "tree_mode"
	KeyShowIcons         = "show_icons"
	KeyBigRows           = "big_rows"
	KeyFastRename        = "fast_rename"
	KeyColumnName        = "column_name"
	KeyColumnSize        = "column_size"
	KeyColumnDone        = "column_done"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyManifestSaved     = "manifest_saved"
	KeyNoDownload        = "no_download"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorLoading      = "error_loading"
	KeyNameTaken         = "name_taken"
	KeyPathCopied        = "path_copied"
	KeyRenameFailedTitle = namecell.KeyRenameFailedTitle
	KeyRenameFailedText  = namecell.KeyRenameFailedText
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "BitFiles",
		KeyOpenManifest:      "Open download…",
		KeySaveManifest:      "Save",
		KeyPause:             "Pause",
		KeyContinue:          "Continue",
		KeyOpen:              "Open",
		KeyReveal:            "Show in folder",
		KeyCopyPath:          "Copy path",
		KeyRename:            "Rename",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyView:              "View",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyTreeMode:          "Show as tree",
		KeyShowIcons:         "Show file icons",
		KeyBigRows:           "Big rows",
		KeyFastRename:        "Fast rename",
		KeyColumnName:        "Name",
		KeyColumnSize:        "Size",
		KeyColumnDone:        "Done",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyManifestSaved:     "Download saved",
		KeyNoDownload:        "Open a download to see its files",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorLoading:      "Error loading download",
		KeyNameTaken:         "A file with this name already exists",
		KeyPathCopied:        "Path copied to clipboard",
		KeyRenameFailedTitle: "Rename failed",
		KeyRenameFailedText:  "The file could not be moved to the new name.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "BitFiles",
		KeyOpenManifest:      "Открыть загрузку…",
		KeySaveManifest:      "Сохранить",
		KeyPause:             "Пауза",
		KeyContinue:          "Продолжить",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать в папке",
		KeyCopyPath:          "Копировать путь",
		KeyRename:            "Переименовать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyTreeMode:          "Показывать деревом",
		KeyShowIcons:         "Значки файлов",
		KeyBigRows:           "Крупные строки",
		KeyFastRename:        "Быстрое переименование",
		KeyColumnName:        "Имя",
		KeyColumnSize:        "Размер",
		KeyColumnDone:        "Готово",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyManifestSaved:     "Загрузка сохранена",
		KeyNoDownload:        "Откройте загрузку, чтобы увидеть файлы",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorLoading:      "Ошибка загрузки описания",
		KeyNameTaken:         "Файл с таким именем уже существует",
		KeyPathCopied:        "Путь скопирован",
		KeyRenameFailedTitle: "Не удалось переименовать",
		KeyRenameFailedText:  "Файл не удалось переместить под новым именем.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "BitFiles",
		KeyOpenManifest:      "Abrir download…",
		KeySaveManifest:      "Salvar",
		KeyPause:             "Pausar",
		KeyContinue:          "Continuar",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar na pasta",
		KeyCopyPath:          "Copiar caminho",
		KeyRename:            "Renomear",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyView:              "Exibir",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyTreeMode:          "Mostrar como árvore",
		KeyShowIcons:         "Ícones de arquivo",
		KeyBigRows:           "Linhas grandes",
		KeyFastRename:        "Renomeação rápida",
		KeyColumnName:        "Nome",
		KeyColumnSize:        "Tamanho",
		KeyColumnDone:        "Concluído",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyManifestSaved:     "Download salvo",
		KeyNoDownload:        "Abra um download para ver seus arquivos",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorLoading:      "Erro ao carregar download",
		KeyNameTaken:         "Já existe um arquivo com este nome",
		KeyPathCopied:        "Caminho copiado",
		KeyRenameFailedTitle: "Falha ao renomear",
		KeyRenameFailedText:  "Não foi possível mover o arquivo para o novo nome.",
	}
}
