// Package gui starts the desktop application.
package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/bitfiles/internal/config"
	"github.com/ytget/bitfiles/internal/download"
	"github.com/ytget/bitfiles/internal/launcher"
	"github.com/ytget/bitfiles/internal/logging"
	"github.com/ytget/bitfiles/internal/platform"
	"github.com/ytget/bitfiles/internal/taskrun"
	"github.com/ytget/bitfiles/internal/ui"
)

const (
	AppID   = "com.ytget.bitfiles"
	AppName = "Bitfiles"

	WindowWidth  = 800
	WindowHeight = 600
)

// Options configure a GUI run
type Options struct {
	Version  string
	Manifest string // opened at startup; the last manifest is used when empty
	Logger   *logging.Logger

	// Relauncher restarts the process through the launcher. Nil uses the
	// current executable.
	Relauncher launcher.Relauncher
}

// Start runs the launcher check and then the application. When the check
// relaunched the process, the child's exit code is returned and the window is
// never opened here.
func Start(ctx context.Context, opts Options) (int, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.ModeGUI)
	}

	relauncher := opts.Relauncher
	if relauncher == nil {
		r, err := launcher.NewExecRelauncher()
		if err != nil {
			return 1, err
		}
		relauncher = r
	}
	result, err := launcher.NewChecker(relauncher, opts.Logger).Check(ctx)
	if err != nil {
		return 1, fmt.Errorf("launcher check: %w", err)
	}
	if result.Relaunched {
		return result.ExitCode, nil
	}

	Run(opts)
	return 0, nil
}

// Run opens the main window and blocks until it is closed
func Run(opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(logging.ModeGUI)
	}
	logger.Info().Str("version", opts.Version).Msg("starting " + AppName)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, opts.Version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		logger.Warn().Err(err).Msg("failed to ensure download directory")
	}
	observer := config.NewObserver(settings)
	downloads := download.NewService(true, logger)
	runner := taskrun.NewService(logger)

	view := ui.NewFilesView(myWindow, myApp, settings, observer, downloads, runner, logger)

	manifest := opts.Manifest
	if manifest == "" {
		manifest = settings.GetLastManifest()
	}
	if manifest != "" {
		if err := view.OpenManifest(manifest); err != nil {
			logger.Warn().Err(err).Str("manifest", manifest).Msg("could not open manifest at startup")
		}
	}

	myWindow.SetOnClosed(func() {
		view.Close()
		observer.Close()
		downloads.Close()
		runner.Close()
	})
	myWindow.ShowAndRun()
}
