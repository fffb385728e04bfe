//go:build windows

package alert

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

const mbIconExclamation = 0x00000030

// NewBeeper returns the platform alerter. On Windows it plays the system
// exclamation sound through MessageBeep.
func NewBeeper(logger *slog.Logger) Alerter {
	user32 := windows.NewLazySystemDLL("user32.dll")
	messageBeep := user32.NewProc("MessageBeep")
	return Func(func(msg string) error {
		if err := messageBeep.Find(); err != nil {
			return err
		}
		r, _, callErr := messageBeep.Call(mbIconExclamation)
		if r == 0 {
			return callErr
		}
		return nil
	})
}
