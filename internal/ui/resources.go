package ui

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/bitfiles/internal/namecell"
)

const (
	AppIcon = "bitfiles.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// checkResource maps a checkbox icon key to a theme icon
func checkResource(key string) fyne.Resource {
	switch key {
	case namecell.IconCheckYes:
		return theme.CheckButtonCheckedIcon()
	case namecell.IconCheckROYes:
		return theme.NewDisabledResource(theme.CheckButtonCheckedIcon())
	case namecell.IconCheckMaybe:
		return theme.ContentRemoveIcon()
	case namecell.IconCheckNo:
		return theme.CheckButtonIcon()
	}
	return nil
}

var fileTypeIcons = map[string]func() fyne.Resource{
	".mp3": theme.FileAudioIcon, ".flac": theme.FileAudioIcon, ".ogg": theme.FileAudioIcon,
	".wav": theme.FileAudioIcon, ".m4a": theme.FileAudioIcon,
	".mp4": theme.FileVideoIcon, ".mkv": theme.FileVideoIcon, ".avi": theme.FileVideoIcon,
	".webm": theme.FileVideoIcon, ".mov": theme.FileVideoIcon,
	".jpg": theme.FileImageIcon, ".jpeg": theme.FileImageIcon, ".png": theme.FileImageIcon,
	".gif": theme.FileImageIcon, ".webp": theme.FileImageIcon,
	".txt": theme.FileTextIcon, ".nfo": theme.FileTextIcon, ".md": theme.FileTextIcon,
	".exe": theme.FileApplicationIcon, ".app": theme.FileApplicationIcon, ".sh": theme.FileApplicationIcon,
}

// fileTypeResource returns the program icon shown in front of a file name
func fileTypeResource(path string) fyne.Resource {
	if icon, ok := fileTypeIcons[strings.ToLower(filepath.Ext(path))]; ok {
		return icon()
	}
	return theme.FileIcon()
}
