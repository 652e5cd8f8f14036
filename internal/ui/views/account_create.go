package views

import (
	"fmt"

	"github.com/hance08/otusbank/internal/constants"
	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/ui"
	"github.com/hance08/otusbank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountSummaryItem struct {
	AgreementID int64
	Number      string
	Type        int
	Amount      decimal.Decimal
}

func RenderAccountSummary(data AccountSummaryItem) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Agreement"), fmt.Sprintf("%d", data.AgreementID)},
		{pterm.Blue("Number"), data.Number},
		{pterm.Blue("Type"), constants.TypeName(data.Type)},
		{pterm.Blue("Balance"), utils.FormatAmount(data.Amount)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(acc *model.Account) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Number"), acc.Number},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
