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

type PaymentSummaryItem struct {
	SourceAgreement      int64
	DestinationAgreement int64
	SourceType           int
	DestinationType      int
	Amount               decimal.Decimal
	CommissionPercent    decimal.Decimal
	Commission           decimal.Decimal
}

// RenderPaymentSummary shows what a payment will debit before it is confirmed.
func RenderPaymentSummary(data PaymentSummaryItem) error {
	ui.PrintL2Title("Payment Summary")

	total := data.Amount.Add(data.Commission)

	tableData := pterm.TableData{
		{pterm.Blue("From"), fmt.Sprintf("agreement %d (%s)", data.SourceAgreement, constants.TypeName(data.SourceType))},
		{pterm.Blue("To"), fmt.Sprintf("agreement %d (%s)", data.DestinationAgreement, constants.TypeName(data.DestinationType))},
		{pterm.Blue("Amount"), utils.FormatAmount(data.Amount)},
		{pterm.Blue("Commission"), fmt.Sprintf("%s (%s%%)", utils.FormatAmount(data.Commission), data.CommissionPercent.String())},
		{pterm.Blue("Total debit"), pterm.Yellow(utils.FormatAmount(total))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderBalances prints the balances of the accounts touched by an operation.
func RenderBalances(accounts ...*model.Account) error {
	ui.Separator()

	tableData := pterm.TableData{{"ID", "Number", "Balance"}}
	for _, acc := range accounts {
		if acc == nil {
			continue
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.ID),
			acc.Number,
			utils.FormatAmount(acc.Amount),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
