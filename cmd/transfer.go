package cmd

import (
	"fmt"

	"github.com/hance08/otusbank/internal/app"
	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/ui/views"
	"github.com/hance08/otusbank/internal/utils"
	"github.com/hance08/otusbank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transferRunner struct {
	provider app.Provider
	req      validation.TransferRequest
}

func NewTransferCmd(provider app.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <source-id> <destination-id> <amount>",
		Short: "Move an amount between two accounts",
		Long: `Move an amount from one account to another. Both balances change
together or not at all.

Example: otusbank transfer 1 2 10`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseID("source account", args[0])
			if err != nil {
				return err
			}
			dst, err := parseID("destination account", args[1])
			if err != nil {
				return err
			}

			runner := &transferRunner{
				provider: provider,
				req: validation.TransferRequest{
					SourceID:      src,
					DestinationID: dst,
					Amount:        args[2],
				},
			}
			return runner.Run()
		},
	}
}

func (r *transferRunner) Run() error {
	if err := validation.Validate(r.req); err != nil {
		return err
	}

	amount, err := validation.ParseAmount(r.req.Amount)
	if err != nil {
		return err
	}

	application := r.provider()

	ok, err := application.Service.Account.MakeTransfer(r.req.SourceID, r.req.DestinationID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: account %d can't send %s", errInsufficientFunds, r.req.SourceID, utils.FormatAmount(amount))
	}

	pterm.Success.Printf("Transferred %s from account #%d to account #%d\n",
		utils.FormatAmount(amount), r.req.SourceID, r.req.DestinationID)

	return renderAccounts(application, r.req.SourceID, r.req.DestinationID)
}

func renderAccounts(application *app.App, ids ...int64) error {
	accounts := make([]*model.Account, 0, len(ids))
	for _, id := range ids {
		acc, err := application.Store.FindByID(id)
		if err != nil {
			return err
		}
		accounts = append(accounts, acc)
	}
	return views.RenderBalances(accounts...)
}
