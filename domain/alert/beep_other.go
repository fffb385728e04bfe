//go:build !windows && !darwin

package alert

import (
	"fmt"
	"log/slog"
	"os"
)

// NewBeeper returns the platform alerter. Elsewhere it rings the terminal
// bell on stderr.
func NewBeeper(logger *slog.Logger) Alerter {
	return Func(func(msg string) error {
		_, err := fmt.Fprint(os.Stderr, "\a")
		return err
	})
}
