package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
)

var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newValidator() *entity.Validator {
	return entity.NewValidator(entity.WithClock(func() time.Time { return now }))
}

func validRequest() entity.PaymentRequest {
	return entity.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "GBP",
		Amount:      100,
		CVV:         "123",
	}
}

func TestValidator_AcceptsValidRequest(t *testing.T) {
	req := validRequest()
	req.CardNumber = "  2222405343248877 "
	req.Currency = " usd"
	req.CVV = " 1234 "

	v, appErr := newValidator().Validate(req).Unwrap()

	require.Nil(t, appErr)
	assert.Equal(t, "2222405343248877", v.CardNumber())
	assert.Equal(t, "8877", v.CardLastFour())
	assert.Equal(t, 4, v.ExpiryMonth())
	assert.Equal(t, 2027, v.ExpiryYear())
	assert.Equal(t, currency.USD, v.Currency())
	assert.Equal(t, int64(100), v.Amount())
	assert.Equal(t, "1234", v.CVV())
	assert.Equal(t, "04/2027", v.ExpiryDate())
}

func TestValidator_CurrentMonthIsNotExpired(t *testing.T) {
	req := validRequest()
	req.ExpiryMonth = 6
	req.ExpiryYear = 2025

	res := newValidator().Validate(req)

	assert.True(t, res.IsSuccess())
}

func TestValidator_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.PaymentRequest)
		want   string
	}{
		{
			name:   "missing card number",
			mutate: func(r *entity.PaymentRequest) { r.CardNumber = "   " },
			want:   "CardNumber is required.",
		},
		{
			name:   "non digit card number",
			mutate: func(r *entity.PaymentRequest) { r.CardNumber = "2222-4053-4324-88" },
			want:   "CardNumber must contain digits only.",
		},
		{
			name:   "short card number",
			mutate: func(r *entity.PaymentRequest) { r.CardNumber = "1234567890123" },
			want:   "CardNumber length must be between 14 and 19 digits.",
		},
		{
			name:   "long card number with letters",
			mutate: func(r *entity.PaymentRequest) { r.CardNumber = "12345678901234567890a" },
			want:   "CardNumber must contain digits only. CardNumber length must be between 14 and 19 digits.",
		},
		{
			name:   "non ascii digits",
			mutate: func(r *entity.PaymentRequest) { r.CardNumber = "２２２２４０５３４３２４８８７７" },
			want:   "CardNumber must contain digits only.",
		},
		{
			name:   "month out of range hides year",
			mutate: func(r *entity.PaymentRequest) { r.ExpiryMonth = 13; r.ExpiryYear = 99 },
			want:   "ExpiryMonth must be between 1 and 12.",
		},
		{
			name:   "two digit year",
			mutate: func(r *entity.PaymentRequest) { r.ExpiryYear = 27 },
			want:   "ExpiryYear must be a 4-digit year.",
		},
		{
			name:   "expired last month",
			mutate: func(r *entity.PaymentRequest) { r.ExpiryMonth = 5; r.ExpiryYear = 2025 },
			want:   "Card is expired.",
		},
		{
			name:   "missing currency",
			mutate: func(r *entity.PaymentRequest) { r.Currency = "" },
			want:   "Currency is required.",
		},
		{
			name:   "unknown currency",
			mutate: func(r *entity.PaymentRequest) { r.Currency = "ABC" },
			want:   "Currency must be a valid 3-letter ISO 4217 code.",
		},
		{
			name:   "four letter currency",
			mutate: func(r *entity.PaymentRequest) { r.Currency = "EURO" },
			want:   "Currency must be a valid 3-letter ISO 4217 code.",
		},
		{
			name:   "unsupported currency",
			mutate: func(r *entity.PaymentRequest) { r.Currency = "JPY" },
			want:   "Currency is not supported.",
		},
		{
			name:   "zero amount",
			mutate: func(r *entity.PaymentRequest) { r.Amount = 0 },
			want:   "Amount must be greater than 0.",
		},
		{
			name:   "negative amount",
			mutate: func(r *entity.PaymentRequest) { r.Amount = -1 },
			want:   "Amount must be greater than 0.",
		},
		{
			name:   "missing cvv",
			mutate: func(r *entity.PaymentRequest) { r.CVV = "" },
			want:   "Cvv is required.",
		},
		{
			name:   "short cvv",
			mutate: func(r *entity.PaymentRequest) { r.CVV = "12" },
			want:   "Cvv is invalid: must be a 3 or 4 digits long sequence.",
		},
		{
			name:   "letters in cvv",
			mutate: func(r *entity.PaymentRequest) { r.CVV = "12a" },
			want:   "Cvv is invalid: must be a 3 or 4 digits long sequence.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			res := newValidator().Validate(req)

			require.False(t, res.IsSuccess())
			assert.Equal(t, apperror.KindValidation, res.Err().Kind)
			assert.Equal(t, tt.want, res.Err().Description)
		})
	}
}

func TestValidator_AccumulatesInOrder(t *testing.T) {
	res := newValidator().Validate(entity.PaymentRequest{
		ExpiryMonth: 0,
		ExpiryYear:  0,
		Amount:      0,
	})

	require.False(t, res.IsSuccess())
	assert.Equal(t,
		"CardNumber is required. ExpiryMonth must be between 1 and 12. Currency is required. "+
			"Amount must be greater than 0. Cvv is required.",
		res.Err().Description,
	)
}

func TestNewPayment_StatusFollowsAuthorization(t *testing.T) {
	v, appErr := newValidator().Validate(validRequest()).Unwrap()
	require.Nil(t, appErr)

	authorized := entity.NewPayment(v, true)
	declined := entity.NewPayment(v, false)

	assert.Equal(t, entity.StatusAuthorized, authorized.Status())
	assert.Equal(t, entity.StatusDeclined, declined.Status())
	assert.NotEqual(t, authorized.ID(), declined.ID())
	assert.Equal(t, "8877", declined.CardLastFour())
}
