package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

func TestHandleError(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"survey interrupt", terminal.InterruptErr, 0},
		{"wrapped survey interrupt", fmt.Errorf("prompt: %w", terminal.InterruptErr), 0},
		{"huh abort", huh.ErrUserAborted, 0},
		{"plain error", errors.New("no source account"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandleError(tt.err); got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"no source account": "No source account",
		"éclair":            "Éclair",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
