package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrInvalidName is returned when a proposed file name cannot be used on this system.
var ErrInvalidName = errors.New("invalid file name")

// windowsReservedChars cannot appear in file names on Windows
const windowsReservedChars = `<>:"|?*`

// ValidateFileName checks that name is a single path element usable as a file name.
func ValidateFileName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\\"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains NUL", ErrInvalidName, name)
	}
	if runtime.GOOS == OSWindows {
		if strings.ContainsAny(name, windowsReservedChars) {
			return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidName, name)
		}
		if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
			return fmt.Errorf("%w: %q ends with a dot or space", ErrInvalidName, name)
		}
	}
	return nil
}

// ResolveRenameTarget returns the canonical absolute path that currentPath
// would have after being renamed to newName in the same directory.
func ResolveRenameTarget(currentPath, newName string) (string, error) {
	if err := ValidateFileName(newName); err != nil {
		return "", err
	}
	if currentPath == "" {
		return "", fmt.Errorf("current path is empty")
	}

	parent := filepath.Dir(currentPath)
	if resolved, err := filepath.EvalSymlinks(parent); err == nil {
		parent = resolved
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to resolve parent directory: %w", err)
	}

	target, err := filepath.Abs(filepath.Join(parent, newName))
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return target, nil
}

// Exists reports whether something (file, directory or dangling link) is present at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// MoveFile moves src to dst, creating the destination directory as needed.
// It falls back to copy and remove when a plain rename is not possible.
func MoveFile(src, dst string) error {
	if err := CreateDirectoryIfNotExists(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	} else if !isCrossDevice(err) {
		return fmt.Errorf("failed to rename %s: %w", src, err)
	}

	if err := copyFile(src, dst); err != nil {
		os.Remove(dst)
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return false
	}
	return strings.Contains(strings.ToLower(linkErr.Err.Error()), "cross-device") ||
		strings.Contains(strings.ToLower(linkErr.Err.Error()), "different disk")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create target: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data: %w", err)
	}
	return out.Close()
}
