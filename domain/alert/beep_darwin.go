//go:build darwin

package alert

import (
	"log/slog"
	"os/exec"
)

// NewBeeper returns the platform alerter. On macOS the message is spoken with
// the system "say" command; the process is not waited for.
func NewBeeper(logger *slog.Logger) Alerter {
	return Func(func(msg string) error {
		cmd := exec.Command("say", msg)
		if err := cmd.Start(); err != nil {
			return err
		}
		go func() {
			if err := cmd.Wait(); err != nil && logger != nil {
				logger.Debug("say exited", "error", err)
			}
		}()
		return nil
	})
}
