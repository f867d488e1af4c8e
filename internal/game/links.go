package game

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/ncruces/zenity"
)

// openURL hands url to the platform's default handler.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	// Reap the opener without blocking the frame.
	go cmd.Wait()
	return nil
}

// saveResumeDialog asks where to write the text resume. An empty path with
// a nil error means the user cancelled.
func saveResumeDialog(name string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Resume"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "Text",
			Patterns: []string{"*.txt"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

func (g *Game) saveResume() error {
	path, err := saveResumeDialog(g.profile.Name + " Resume.txt")
	if err != nil || path == "" {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	if err := g.profile.Resume(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	g.status = "Resume saved to " + path
	g.logger.Printf("resume saved to %s", path)
	return nil
}

// fail records err for the status line and pops an error dialog.
func (g *Game) fail(err error) {
	g.lastErr = err
	g.logger.Printf("error: %v", err)
	if g.dialogs {
		_ = zenity.Error(err.Error(), zenity.Title(g.profile.Name), zenity.ErrorIcon)
	}
}
