package views

import (
	"fmt"

	"github.com/hance08/otusbank/internal/constants"
	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	Title string
}

func NewAccountListView(title string) *AccountListView {
	if title == "" {
		title = "Account List"
	}
	return &AccountListView{Title: title}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	headers := []string{"ID", "Agreement", "Number", "Type", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := utils.FormatAmount(acc.Amount)
		typeName := constants.TypeName(acc.Type)

		var coloredType, coloredBalance string
		switch {
		case acc.Amount.IsNegative():
			coloredType = typeName
			coloredBalance = pterm.Red(balance)
		case acc.Type == model.TypeCommission:
			coloredType = pterm.Gray(typeName)
			coloredBalance = pterm.Gray(balance)
		default:
			coloredType = typeName
			coloredBalance = pterm.Green(balance)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.ID),
			fmt.Sprintf("%d", acc.AgreementID),
			acc.Number,
			coloredType,
			coloredBalance,
		})
	}

	pterm.DefaultSection.Printf("%s", v.Title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
