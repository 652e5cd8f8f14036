package errhandler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err means the user aborted an interactive prompt.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError prints err for the user and returns the process exit code.
func HandleError(err error) int {
	if err == nil {
		return 0
	}

	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	pterm.Error.Println(Capitalize(err.Error()))
	return 1
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
