package account

import (
	"github.com/hance08/otusbank/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(provider app.Provider) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create accounts and show the list of accounts.",
		Long:  `Create accounts and show the list of accounts, optionally only those of one agreement.`,
	}

	accountCmd.AddCommand(NewCreateCmd(provider))
	accountCmd.AddCommand(NewListCmd(provider))

	return accountCmd
}
