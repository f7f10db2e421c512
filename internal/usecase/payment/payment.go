package payment

//go:generate mockgen -source=../../domain/bank/bank.go -destination=mocks/bank.go -package=mocks
//go:generate mockgen -source=../../domain/repository/repository.go -destination=mocks/repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/bank"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/domain/repository"
	"github.com/Xausdorf/card-gateway/internal/domain/result"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/logging"
)

const tracerName = "github.com/Xausdorf/card-gateway/internal/usecase/payment"

// Observer is notified once per PostPayment with the payment status or the failing error kind.
type Observer interface {
	PaymentProcessed(outcome string)
}

type nopObserver struct{}

func (nopObserver) PaymentProcessed(string) {}

type Option func(*UseCase)

func WithValidator(v *entity.Validator) Option {
	return func(uc *UseCase) {
		uc.validator = v
	}
}

func WithObserver(o Observer) Option {
	return func(uc *UseCase) {
		if o != nil {
			uc.observer = o
		}
	}
}

// UseCase runs validation, authorization and persistence in that order and stops at the
// first failure. It keeps no state between calls.
type UseCase struct {
	validator *entity.Validator
	bank      bank.Gateway
	payments  repository.PaymentRepository
	observer  Observer
	tracer    trace.Tracer
}

func NewUseCase(gateway bank.Gateway, payments repository.PaymentRepository, opts ...Option) *UseCase {
	uc := &UseCase{
		validator: entity.NewValidator(),
		bank:      gateway,
		payments:  payments,
		observer:  nopObserver{},
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *UseCase) PostPayment(ctx context.Context, req entity.PaymentRequest) result.Result[*entity.Payment] {
	ctx, span := uc.tracer.Start(ctx, "payment.PostPayment")
	defer span.End()

	res := uc.postPayment(ctx, req)

	outcome := result.Match(res,
		func(p *entity.Payment) string { return string(p.Status()) },
		func(e *apperror.Error) string { return e.Kind.String() },
	)
	uc.observer.PaymentProcessed(outcome)
	span.SetAttributes(attribute.String("payment.outcome", outcome))

	logger := logging.FromContext(ctx)
	if p, appErr := res.Unwrap(); appErr != nil {
		span.SetStatus(codes.Error, appErr.Description)
		logger.Warn("payment_rejected",
			zap.String("kind", appErr.Kind.String()),
			zap.String("error", appErr.Description),
		)
	} else {
		span.SetAttributes(attribute.String("payment.id", p.ID().String()))
		logger.Info("payment_processed",
			zap.String("payment_id", p.ID().String()),
			zap.String("status", string(p.Status())),
			zap.String("card_last_four", p.CardLastFour()),
			zap.String("currency", p.Currency().String()),
			zap.Int64("amount", p.Amount()),
		)
	}
	return res
}

func (uc *UseCase) postPayment(ctx context.Context, req entity.PaymentRequest) result.Result[*entity.Payment] {
	validated, appErr := uc.validator.Validate(req).Unwrap()
	if appErr != nil {
		return result.Fail[*entity.Payment](appErr)
	}

	if ctx.Err() != nil {
		return result.Fail[*entity.Payment](apperror.BankError(""))
	}

	auth, appErr := uc.bank.Authorize(ctx, validated).Unwrap()
	if appErr != nil {
		return result.Fail[*entity.Payment](appErr)
	}

	// A failed insert after a successful authorization leaves an authorized charge with no
	// record; no reversal is attempted.
	p := entity.NewPayment(validated, auth.Authorized)
	if _, appErr := uc.payments.Insert(ctx, p).Unwrap(); appErr != nil {
		return result.Fail[*entity.Payment](appErr)
	}
	return result.Ok(p)
}

func (uc *UseCase) GetPayment(ctx context.Context, id uuid.UUID) result.Result[*entity.Payment] {
	ctx, span := uc.tracer.Start(ctx, "payment.GetPayment", trace.WithAttributes(
		attribute.String("payment.id", id.String()),
	))
	defer span.End()

	res := uc.payments.FindByID(ctx, id)
	if appErr := res.Err(); appErr != nil {
		span.SetStatus(codes.Error, appErr.Description)
		logging.FromContext(ctx).Debug("payment_lookup_failed",
			zap.String("payment_id", id.String()),
			zap.String("kind", appErr.Kind.String()),
		)
	}
	return res
}
