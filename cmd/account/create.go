package account

import (
	"errors"
	"fmt"

	"github.com/hance08/otusbank/internal/app"
	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/store"
	"github.com/hance08/otusbank/internal/ui/prompts"
	"github.com/hance08/otusbank/internal/ui/views"
	"github.com/hance08/otusbank/internal/validation"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Agreement int64
	Number    string
	Type      int
	Amount    string
}

type createRunner struct {
	provider app.Provider
	flags    *createFlags
}

func NewCreateCmd(provider app.Provider) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account owned by an agreement.

Without flags the command asks for every field interactively.

Example: otusbank account create -g 1 -n 40817810000000000001 -t 0 -a 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				provider: provider,
				flags:    flags,
			}

			hasFlags := cmd.Flags().Changed("agreement") ||
				cmd.Flags().Changed("number")

			if hasFlags {
				return runner.FlagsMode()
			}
			return runner.InteractiveMode()
		},
	}

	cmd.Flags().Int64VarP(&flags.Agreement, "agreement", "g", 0, "Owning agreement ID")
	cmd.Flags().StringVarP(&flags.Number, "number", "n", "", "Account number (unique)")
	cmd.Flags().IntVarP(&flags.Type, "type", "t", model.TypeChecking, "Account type: 0 (Checking), 1 (Commission)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "0", "Initial balance")

	return cmd
}

// FlagsMode creates an account from command-line flags
func (r *createRunner) FlagsMode() error {
	req := validation.AddAccountRequest{
		AgreementID: r.flags.Agreement,
		Number:      r.flags.Number,
		Type:        r.flags.Type,
		Amount:      r.flags.Amount,
	}

	if err := validation.Validate(req); err != nil {
		return err
	}

	acc, err := r.save(req)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(acc)
}

// InteractiveMode builds an account through interactive prompts
func (r *createRunner) InteractiveMode() error {
	agreementID, err := prompts.PromptAgreementID()
	if err != nil {
		return err
	}

	number, err := prompts.PromptAccountNumber(validation.ValidateAccountNumber)
	if err != nil {
		return err
	}

	accType, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}

	amountInput, err := prompts.PromptInitialBalance(validation.ValidateInitialBalance)
	if err != nil {
		return err
	}

	req := validation.AddAccountRequest{
		AgreementID: agreementID,
		Number:      number,
		Type:        accType,
		Amount:      amountInput,
	}
	if err := validation.Validate(req); err != nil {
		return err
	}

	amount, err := validation.ParseAmount(req.Amount)
	if err != nil {
		return err
	}

	if err := views.RenderAccountSummary(views.AccountSummaryItem{
		AgreementID: req.AgreementID,
		Number:      req.Number,
		Type:        req.Type,
		Amount:      amount,
	}); err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account creation cancelled")
	}

	acc, err := r.save(req)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(acc)
}

func (r *createRunner) save(req validation.AddAccountRequest) (*model.Account, error) {
	amount, err := validation.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	svc := r.provider().Service
	acc, err := svc.Account.AddAccount(model.Agreement{ID: req.AgreementID}, req.Number, req.Type, amount)
	if err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			return nil, fmt.Errorf("account number '%s' already exists", req.Number)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return acc, nil
}
