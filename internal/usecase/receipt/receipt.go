package receipt

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/domain/receipt"
	"github.com/Xausdorf/card-gateway/internal/domain/repository"
	"github.com/Xausdorf/card-gateway/internal/domain/result"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/logging"
)

const msgGenerationFailed = "Receipt generation failed"

type UseCase struct {
	payments  repository.PaymentRepository
	generator receipt.Generator
}

func NewUseCase(payments repository.PaymentRepository, generator receipt.Generator) *UseCase {
	return &UseCase{
		payments:  payments,
		generator: generator,
	}
}

// Execute renders a PNG QR code describing a stored payment.
func (uc *UseCase) Execute(ctx context.Context, paymentID uuid.UUID) result.Result[[]byte] {
	p, appErr := uc.payments.FindByID(ctx, paymentID).Unwrap()
	if appErr != nil {
		return result.Fail[[]byte](appErr)
	}

	png, err := uc.generator.Generate(dataOf(p))
	if err != nil {
		logging.FromContext(ctx).Error("receipt_generation_failed",
			zap.String("payment_id", paymentID.String()),
			zap.Error(err),
		)
		return result.Fail[[]byte](apperror.Internal(msgGenerationFailed))
	}
	return result.Ok(png)
}

func dataOf(p *entity.Payment) receipt.Data {
	return receipt.Data{
		PaymentID:    p.ID().String(),
		Status:       string(p.Status()),
		CardLastFour: p.CardLastFour(),
		Currency:     p.Currency().String(),
		Amount:       p.Amount(),
	}
}
