package cmd

import (
	"fmt"

	"github.com/hance08/otusbank/internal/app"
	"github.com/hance08/otusbank/internal/ui/views"
	"github.com/hance08/otusbank/internal/utils"
	"github.com/hance08/otusbank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type chargeRunner struct {
	provider app.Provider
	req      validation.ChargeRequest
}

func NewChargeCmd(provider app.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "charge <account-id> <amount>",
		Short: "Withdraw an amount from an account",
		Long: `Withdraw an amount from an account. The charge is refused when the
balance would drop below zero.

Example: otusbank charge 1 25.50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("account", args[0])
			if err != nil {
				return err
			}

			runner := &chargeRunner{
				provider: provider,
				req:      validation.ChargeRequest{AccountID: id, Amount: args[1]},
			}
			return runner.Run()
		},
	}
}

func (r *chargeRunner) Run() error {
	if err := validation.Validate(r.req); err != nil {
		return err
	}

	amount, err := validation.ParseAmount(r.req.Amount)
	if err != nil {
		return err
	}

	application := r.provider()

	ok, err := application.Service.Account.Charge(r.req.AccountID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: account %d can't be charged %s", errInsufficientFunds, r.req.AccountID, utils.FormatAmount(amount))
	}

	pterm.Success.Printf("Charged %s from account #%d\n", utils.FormatAmount(amount), r.req.AccountID)

	acc, err := application.Store.FindByID(r.req.AccountID)
	if err != nil {
		return err
	}
	return views.RenderBalances(acc)
}
