package prompts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hance08/otusbank/internal/constants"
)

// PromptAgreementID prompts for the owning agreement id
func PromptAgreementID() (int64, error) {
	input, err := PromptInput("Agreement ID:", "", func(s string) error {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("agreement id must be a positive integer")
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}

	return strconv.ParseInt(input, 10, 64)
}

// PromptAccountNumber prompts for account number with validation
func PromptAccountNumber(validator func(string) error) (string, error) {
	return PromptInput("Account Number:", "", validator)
}

// PromptAccountType prompts for account type selection
func PromptAccountType() (int, error) {
	types := make([]int, 0, len(constants.TypeNames))
	for t := range constants.TypeNames {
		types = append(types, t)
	}
	sort.Ints(types)

	options := make([]string, 0, len(types))
	for _, t := range types {
		options = append(options, fmt.Sprintf("%d - %s", t, constants.TypeNames[t]))
	}

	selected, err := PromptSelect("Account Type:", options, options[0])
	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}

	// Extract type code
	return strconv.Atoi(strings.Split(selected, " ")[0])
}

// PromptInitialBalance prompts for initial balance with validation
func PromptInitialBalance(validator func(string) error) (string, error) {
	return PromptInput("Initial Balance (press Enter for 0):", "0", validator)
}
