package apperror

import "fmt"

type Kind int

const (
	KindInternal Kind = iota
	KindSubServiceUnavailable
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "Internal"
	case KindSubServiceUnavailable:
		return "SubServiceUnavailable"
	case KindValidation:
		return "Validation"
	case KindNotFound:
		return "NotFound"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	bankServiceUnavailable = "Bank Service Unavailable"
	invalidBankRequest     = "Invalid request sent to Bank"
	paymentNotFound        = "Payment not found"
)

// Error is the failure half of a result. Callers branch on Kind; Description is for humans.
type Error struct {
	Kind        Kind
	Description string
}

func New(kind Kind, description string) *Error {
	return &Error{Kind: kind, Description: description}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

func Validation(description string) *Error {
	return New(KindValidation, description)
}

func Internal(description string) *Error {
	return New(KindInternal, description)
}

// BankError reports the bank as unavailable. An empty description falls back to the generic one.
func BankError(description string) *Error {
	if description == "" {
		description = bankServiceUnavailable
	}
	return New(KindSubServiceUnavailable, description)
}

// BankBadRequest means the bank rejected the shape of our request, which validation should have prevented.
func BankBadRequest() *Error {
	return Internal(invalidBankRequest)
}

func PaymentNotFound() *Error {
	return New(KindNotFound, paymentNotFound)
}
