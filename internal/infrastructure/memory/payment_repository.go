package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/domain/result"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*entity.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (r *PaymentRepository) Insert(_ context.Context, payment *entity.Payment) result.Result[result.Unit] {
	if payment == nil {
		return result.Fail[result.Unit](apperror.Internal("payment is required"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[payment.ID()]; exists {
		return result.Fail[result.Unit](apperror.Internal(fmt.Sprintf("Failed to persist payment %s", payment.ID())))
	}
	r.payments[payment.ID()] = payment
	return result.Done()
}

func (r *PaymentRepository) FindByID(_ context.Context, id uuid.UUID) result.Result[*entity.Payment] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return result.Fail[*entity.Payment](apperror.PaymentNotFound())
	}
	return result.Ok(payment)
}
