package entity

import (
	"strings"
	"time"

	"golang.org/x/text/currency"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/result"
)

const (
	minCardNumberLength = 14
	maxCardNumberLength = 19
	minExpiryYear       = 1000
	maxExpiryYear       = 9999
	lastFourLength      = 4
)

const (
	msgCardNumberRequired = "CardNumber is required."
	msgCardNumberDigits   = "CardNumber must contain digits only."
	msgCardNumberLength   = "CardNumber length must be between 14 and 19 digits."
	msgExpiryMonth        = "ExpiryMonth must be between 1 and 12."
	msgExpiryYear         = "ExpiryYear must be a 4-digit year."
	msgCardExpired        = "Card is expired."
	msgCurrencyRequired   = "Currency is required."
	msgCurrencyInvalid    = "Currency must be a valid 3-letter ISO 4217 code."
	msgCurrencyUnsupport  = "Currency is not supported."
	msgAmountPositive     = "Amount must be greater than 0."
	msgCVVRequired        = "Cvv is required."
	msgCVVInvalid         = "Cvv is invalid: must be a 3 or 4 digits long sequence."
)

var supportedCurrencies = map[currency.Unit]struct{}{
	currency.EUR: {},
	currency.USD: {},
	currency.GBP: {},
}

type ValidatorOption func(*Validator)

// WithClock overrides the source of the current time used for the expiry check.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) {
		v.now = now
	}
}

type Validator struct {
	now func() time.Time
}

func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every check and reports all failures at once, joined in check order.
func (v *Validator) Validate(req PaymentRequest) result.Result[*ValidatedPaymentRequest] {
	var errs []string

	card, cardErrs := checkCardNumber(req.CardNumber)
	errs = append(errs, cardErrs...)

	if msg := v.checkExpiry(req.ExpiryMonth, req.ExpiryYear); msg != "" {
		errs = append(errs, msg)
	}

	unit, currencyErr := checkCurrency(req.Currency)
	if currencyErr != "" {
		errs = append(errs, currencyErr)
	}

	if req.Amount <= 0 {
		errs = append(errs, msgAmountPositive)
	}

	cvv, cvvErr := checkCVV(req.CVV)
	if cvvErr != "" {
		errs = append(errs, cvvErr)
	}

	if len(errs) > 0 {
		return result.Fail[*ValidatedPaymentRequest](apperror.Validation(strings.Join(errs, " ")))
	}

	return result.Ok(&ValidatedPaymentRequest{
		cardNumber:   card,
		cardLastFour: card[len(card)-lastFourLength:],
		expiryMonth:  req.ExpiryMonth,
		expiryYear:   req.ExpiryYear,
		currency:     unit,
		amount:       req.Amount,
		cvv:          cvv,
	})
}

func checkCardNumber(raw string) (string, []string) {
	card := strings.TrimSpace(raw)
	if card == "" {
		return "", []string{msgCardNumberRequired}
	}

	var errs []string
	if !isDigits(card) {
		errs = append(errs, msgCardNumberDigits)
	}
	if n := len([]rune(card)); n < minCardNumberLength || n > maxCardNumberLength {
		errs = append(errs, msgCardNumberLength)
	}
	return card, errs
}

// checkExpiry compares at month granularity in UTC. An invalid month hides the year and
// expiry checks, an invalid year hides the expiry check.
func (v *Validator) checkExpiry(month, year int) string {
	if month < 1 || month > 12 {
		return msgExpiryMonth
	}
	if year < minExpiryYear || year > maxExpiryYear {
		return msgExpiryYear
	}

	now := v.now().UTC()
	if year*12+month < now.Year()*12+int(now.Month()) {
		return msgCardExpired
	}
	return ""
}

func checkCurrency(raw string) (currency.Unit, string) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return currency.Unit{}, msgCurrencyRequired
	}

	unit, err := currency.ParseISO(code)
	if err != nil || len(code) != 3 {
		return currency.Unit{}, msgCurrencyInvalid
	}
	if _, ok := supportedCurrencies[unit]; !ok {
		return currency.Unit{}, msgCurrencyUnsupport
	}
	return unit, ""
}

func checkCVV(raw string) (string, string) {
	cvv := strings.TrimSpace(raw)
	if cvv == "" {
		return "", msgCVVRequired
	}
	if !isDigits(cvv) || (len(cvv) != 3 && len(cvv) != 4) {
		return "", msgCVVInvalid
	}
	return cvv, ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
