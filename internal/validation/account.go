package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/otusbank/internal/constants"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && !d.IsNegative()
	})
	_ = v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.IsPositive()
	})
	return v
}

type AddAccountRequest struct {
	AgreementID int64  `validate:"gt=0"`
	Number      string `validate:"required,max=34"`
	Type        int    `validate:"gte=0,lte=255"`
	Amount      string `validate:"required,amount"`
}

type ChargeRequest struct {
	AccountID int64  `validate:"gt=0"`
	Amount    string `validate:"required,amount"`
}

type TransferRequest struct {
	SourceID      int64  `validate:"gt=0"`
	DestinationID int64  `validate:"gt=0"`
	Amount        string `validate:"required,positive_amount"`
}

type PaymentRequest struct {
	SourceAgreement      int64  `validate:"gt=0"`
	DestinationAgreement int64  `validate:"gt=0"`
	SourceType           int    `validate:"gte=0,lte=255"`
	DestinationType      int    `validate:"gte=0,lte=255"`
	Amount               string `validate:"required,positive_amount"`
	Commission           string `validate:"required,amount"`
}

// Validate checks a request struct against its tags and folds every failing
// field into one error.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Field(), errorMsg(fe)))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func errorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "max":
		return fmt.Sprintf("is too long (max %s characters)", fe.Param())
	case "amount":
		return "must be a non-negative decimal number"
	case "positive_amount":
		return "must be a decimal number greater than 0"
	default:
		return "is invalid"
	}
}

// ValidateAccountNumber is the prompt-side check for an account number.
func ValidateAccountNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("account number can't be empty")
	}
	if len(number) > constants.MaxNumberLen {
		return fmt.Errorf("account number too long (max %d characters)", constants.MaxNumberLen)
	}
	return nil
}

// ValidateInitialBalance accepts an empty string (meaning zero) or a
// non-negative decimal.
func ValidateInitialBalance(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	d, err := decimal.NewFromString(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if d.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}

// ParseAmount parses a validated amount string.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", input, err)
	}
	return d, nil
}
