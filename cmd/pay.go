package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/otusbank/internal/app"
	"github.com/hance08/otusbank/internal/model"
	"github.com/hance08/otusbank/internal/service"
	"github.com/hance08/otusbank/internal/ui/views"
	"github.com/hance08/otusbank/internal/utils"
	"github.com/hance08/otusbank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type payFlags struct {
	Source          int64
	Destination     int64
	SourceType      int
	DestinationType int
	Amount          string
	Commission      string
	Yes             bool
}

type payRunner struct {
	provider app.Provider
	flags    *payFlags
	cmd      *cobra.Command
}

func NewPayCmd(provider app.Provider) *cobra.Command {
	flags := &payFlags{}

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay from one agreement to another",
		Long: `Pay from one agreement to another. Each agreement is represented by its
first account of the requested type. A commission percentage, taken from the
config unless --commission is given, is added to the amount debited.

Example: otusbank pay -s 1 -d 2 -a 100 --commission 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &payRunner{
				provider: provider,
				flags:    flags,
				cmd:      cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().Int64VarP(&flags.Source, "source", "s", 0, "Paying agreement ID")
	cmd.Flags().Int64VarP(&flags.Destination, "destination", "d", 0, "Receiving agreement ID")
	cmd.Flags().IntVar(&flags.SourceType, "source-type", 0, "Account type used on the paying side (default from config)")
	cmd.Flags().IntVar(&flags.DestinationType, "destination-type", 0, "Account type used on the receiving side (default from config)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount to pay")
	cmd.Flags().StringVar(&flags.Commission, "commission", "", "Commission percentage (default from config)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (r *payRunner) Run() error {
	application := r.provider()
	r.applyDefaults(application)

	req := validation.PaymentRequest{
		SourceAgreement:      r.flags.Source,
		DestinationAgreement: r.flags.Destination,
		SourceType:           r.flags.SourceType,
		DestinationType:      r.flags.DestinationType,
		Amount:               r.flags.Amount,
		Commission:           r.flags.Commission,
	}
	if err := validation.Validate(req); err != nil {
		return err
	}

	amount, err := validation.ParseAmount(req.Amount)
	if err != nil {
		return err
	}
	percent, err := validation.ParseAmount(req.Commission)
	if err != nil {
		return err
	}

	if err := views.RenderPaymentSummary(views.PaymentSummaryItem{
		SourceAgreement:      req.SourceAgreement,
		DestinationAgreement: req.DestinationAgreement,
		SourceType:           req.SourceType,
		DestinationType:      req.DestinationType,
		Amount:               amount,
		CommissionPercent:    percent,
		Commission:           service.Commission(amount, percent),
	}); err != nil {
		return err
	}

	if !r.flags.Yes {
		var confirmation bool
		confirmPrompt := &survey.Confirm{
			Message: "Do you want to make this payment?",
			Default: false,
		}
		if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
			return err
		}

		if !confirmation {
			pterm.Info.Println("Payment cancelled")
			return nil
		}
	}

	ok, err := application.Service.Payment.MakeTransferWithCommission(
		model.Agreement{ID: req.SourceAgreement},
		model.Agreement{ID: req.DestinationAgreement},
		req.SourceType,
		req.DestinationType,
		amount,
		percent,
	)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: agreement %d can't pay %s", errInsufficientFunds, req.SourceAgreement, utils.FormatAmount(amount))
	}

	pterm.Success.Printf("Paid %s from agreement #%d to agreement #%d\n",
		utils.FormatAmount(amount), req.SourceAgreement, req.DestinationAgreement)

	return nil
}

// applyDefaults fills unset flags from the payments section of the config.
func (r *payRunner) applyDefaults(application *app.App) {
	payments := application.Config.Payments
	flags := r.cmd.Flags()

	if !flags.Changed("commission") {
		r.flags.Commission = payments.Commission
	}
	if !flags.Changed("source-type") {
		r.flags.SourceType = payments.SourceType
	}
	if !flags.Changed("destination-type") {
		r.flags.DestinationType = payments.DestinationType
	}
}
