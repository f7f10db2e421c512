package entity

import (
	"fmt"

	"golang.org/x/text/currency"
)

// PaymentRequest is untrusted caller input.
type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// ValidatedPaymentRequest can only be built by Validator.
type ValidatedPaymentRequest struct {
	cardNumber   string
	cardLastFour string
	expiryMonth  int
	expiryYear   int
	currency     currency.Unit
	amount       int64
	cvv          string
}

func (v *ValidatedPaymentRequest) CardNumber() string {
	return v.cardNumber
}

func (v *ValidatedPaymentRequest) CardLastFour() string {
	return v.cardLastFour
}

func (v *ValidatedPaymentRequest) ExpiryMonth() int {
	return v.expiryMonth
}

func (v *ValidatedPaymentRequest) ExpiryYear() int {
	return v.expiryYear
}

func (v *ValidatedPaymentRequest) Currency() currency.Unit {
	return v.currency
}

func (v *ValidatedPaymentRequest) Amount() int64 {
	return v.amount
}

func (v *ValidatedPaymentRequest) CVV() string {
	return v.cvv
}

// ExpiryDate formats the expiry the way the bank expects it: MM/YYYY.
func (v *ValidatedPaymentRequest) ExpiryDate() string {
	return fmt.Sprintf("%02d/%04d", v.expiryMonth, v.expiryYear)
}
