package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/otusbank/internal/ui"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{ui.IconOption()}

var errInsufficientFunds = errors.New("insufficient funds")

func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID: %s", kind, arg)
	}
	return id, nil
}
