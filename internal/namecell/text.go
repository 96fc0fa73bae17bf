package namecell

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ytget/bitfiles/internal/model"
)

// SortKey is the value the name column sorts by: the display name, or "" for no entry
func SortKey(entry model.FileEntry) string {
	if entry == nil {
		return ""
	}
	return entry.Name()
}

// obfuscationSpace seeds the name-derived tokens used for screenshots
var obfuscationSpace = uuid.MustParse("6f1c3a52-7d0e-4c6b-9a55-2b1f0e3d8c41")

// ObfuscatedName hides a file name for debug screenshots. The same name
// always maps to the same token and the extension is kept.
func ObfuscatedName(entry model.FileEntry) string {
	name := SortKey(entry)
	if name == "" {
		return ""
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if base == "" {
		base, ext = name, ""
	}
	token := uuid.NewSHA1(obfuscationSpace, []byte(base)).String()
	return token[:8] + ext
}
