// Package browser shells out to the desktop for the sources that have no
// API: it opens a download page in the user's browser and waits for them
// to trigger the export.
package browser

import (
	"context"
	"os/exec"
	"runtime"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// PageLoadWait is how long to give the browser after opening a URL before
// polling the staging directory.
const PageLoadWait = 5 * time.Second

// Launcher opens pages in the user's default browser.
type Launcher interface {
	// OpenURL opens the URL in the default browser.
	OpenURL(ctx context.Context, url string) error

	// CloseTab closes the frontmost browser tab. Best effort: window
	// automation is only available on some platforms.
	CloseTab(ctx context.Context) error
}

// ExecLauncher shells out to the platform's opener.
type ExecLauncher struct{}

func (ExecLauncher) OpenURL(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}
	if err := cmd.Run(); err != nil {
		return eris.Wrapf(err, "browser: open %s", url)
	}
	return nil
}

func (ExecLauncher) CloseTab(ctx context.Context) error {
	if runtime.GOOS != "darwin" {
		zap.L().Debug("close tab unsupported on this platform", zap.String("goos", runtime.GOOS))
		return nil
	}
	script := `tell application "System Events" to keystroke "w" using command down`
	if err := exec.CommandContext(ctx, "osascript", "-e", script).Run(); err != nil {
		// Leaving a tab open is a cosmetic failure.
		zap.L().Warn("could not close browser tab", zap.Error(err))
	}
	return nil
}
