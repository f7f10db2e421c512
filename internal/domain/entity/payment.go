package entity

import (
	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
)

// Payment is immutable once built and keeps only the last four digits of the card.
type Payment struct {
	id           uuid.UUID
	status       PaymentStatus
	cardLastFour string
	expiryMonth  int
	expiryYear   int
	currency     currency.Unit
	amount       int64
}

// NewPayment records the bank's decision for a validated request under a fresh identifier.
func NewPayment(req *ValidatedPaymentRequest, authorized bool) *Payment {
	status := StatusDeclined
	if authorized {
		status = StatusAuthorized
	}
	return &Payment{
		id:           uuid.New(),
		status:       status,
		cardLastFour: req.CardLastFour(),
		expiryMonth:  req.ExpiryMonth(),
		expiryYear:   req.ExpiryYear(),
		currency:     req.Currency(),
		amount:       req.Amount(),
	}
}

func ReconstructPayment(
	id uuid.UUID,
	status PaymentStatus,
	cardLastFour string,
	expiryMonth, expiryYear int,
	unit currency.Unit,
	amount int64,
) *Payment {
	return &Payment{
		id:           id,
		status:       status,
		cardLastFour: cardLastFour,
		expiryMonth:  expiryMonth,
		expiryYear:   expiryYear,
		currency:     unit,
		amount:       amount,
	}
}

func (p *Payment) ID() uuid.UUID {
	return p.id
}

func (p *Payment) Status() PaymentStatus {
	return p.status
}

func (p *Payment) CardLastFour() string {
	return p.cardLastFour
}

func (p *Payment) ExpiryMonth() int {
	return p.expiryMonth
}

func (p *Payment) ExpiryYear() int {
	return p.expiryYear
}

func (p *Payment) Currency() currency.Unit {
	return p.currency
}

func (p *Payment) Amount() int64 {
	return p.amount
}
