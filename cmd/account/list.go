package account

import (
	"fmt"

	"github.com/hance08/otusbank/internal/app"
	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Agreement int64
}

type ListCommandRunner struct {
	provider app.Provider
	flags    *listFlags
	filtered bool
}

func NewListCmd(provider app.Provider) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long: `List all accounts in the system with their current balances.
You can restrict the list to the accounts of one agreement.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				provider: provider,
				flags:    flags,
				filtered: cmd.Flags().Changed("agreement"),
			}
			return runner.Run()
		},
	}

	cmd.Flags().Int64VarP(&flags.Agreement, "agreement", "g", 0, "Only show accounts of this agreement")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	svc := r.provider().Service

	var accounts []*model.Account
	var err error
	title := "Account List"

	if r.filtered {
		accounts, err = svc.Account.GetAgreementAccounts(model.Agreement{ID: r.flags.Agreement})
		title = fmt.Sprintf("Accounts of agreement %d", r.flags.Agreement)
	} else {
		accounts, err = svc.Account.GetAccounts()
	}

	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.NewAccountListView(title).Render(accounts)
}
