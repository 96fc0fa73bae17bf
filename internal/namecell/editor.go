package namecell

import (
	"context"
	"errors"

	"golang.org/x/text/cases"

	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/model"
	"github.com/ytget/bitfiles/internal/platform"
)

// Message keys shown when a rename could not be applied
const (
	KeyRenameFailedTitle = "rename_failed_title"
	KeyRenameFailedText  = "rename_failed_text"
)

var errRetargetFailed = errors.New("file could not be moved to the new name")

// TaskRunner runs fn on a background worker and blocks until it returned
type TaskRunner interface {
	Run(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

// Notifier shows a modal error built from localization keys
type Notifier interface {
	ShowError(titleKey, textKey string)
}

// Editor validates and applies inline renames of file names
type Editor struct {
	runner   TaskRunner
	notifier Notifier
	logger   *logging.Logger

	resolve func(currentPath, name string) (string, error)
	exists  func(path string) bool
}

// NewEditor creates a rename editor
func NewEditor(runner TaskRunner, notifier Notifier, logger *logging.Logger) *Editor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Editor{
		runner:   runner,
		notifier: notifier,
		logger:   logger.Component("rename"),
		resolve:  platform.ResolveRenameTarget,
		exists:   platform.Exists,
	}
}

// Accept is called while the user edits (final false) and on commit
// (final true). A false result rejects the value and keeps the editor open.
//
// Unchanged names (ignoring case) and empty values are accepted without
// doing anything. A name that cannot be resolved or whose target already
// exists is rejected. On commit the owning download is paused, the file is
// moved on the task runner, the download is resumed if this call paused
// it, and a failed move is reported through the notifier. The edit is
// accepted either way once the move was attempted.
func (e *Editor) Accept(entry model.FileEntry, current, proposed string, final bool) bool {
	if proposed == "" || current == "" || equalFold(proposed, current) {
		return true
	}
	if entry == nil {
		return false
	}

	target, err := e.resolve(entry.Path(), proposed)
	if err != nil {
		e.logger.Debug().Err(err).Str("name", proposed).Msg("rename target rejected")
		return false
	}

	if !final {
		return !e.exists(target)
	}
	if e.exists(target) {
		return false
	}

	if !e.retarget(entry, target) {
		if e.notifier != nil {
			e.notifier.ShowError(KeyRenameFailedTitle, KeyRenameFailedText)
		}
	}
	return true
}

func (e *Editor) retarget(entry model.FileEntry, target string) bool {
	if lifecycle := entry.Download(); lifecycle != nil {
		if lifecycle.Pause() {
			defer lifecycle.Resume()
		}
	}

	linked := false
	body := func(ctx context.Context) error {
		linked = entry.SetLink(target)
		if !linked {
			return errRetargetFailed
		}
		return nil
	}

	var err error
	if e.runner != nil {
		err = e.runner.Run(context.Background(), "rename "+entry.Name(), body)
	} else {
		err = body(context.Background())
	}
	if err != nil {
		e.logger.Error().Err(err).Str("from", entry.Path()).Str("to", target).Msg("rename failed")
		return false
	}

	e.logger.Info().Str("to", target).Msg("file renamed")
	return linked
}

func equalFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
