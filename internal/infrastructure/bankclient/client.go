package bankclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/bank"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/domain/result"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/logging"
)

const (
	paymentsPath      = "payments"
	invalidResponse   = "Bank payment response is invalid"
	unavailableReason = "Bank Service Unavailable"
	maxBodyBytes      = 1 << 20
	tracerName        = "github.com/Xausdorf/card-gateway/internal/infrastructure/bankclient"
)

// Observer receives one notification per authorization call.
type Observer interface {
	BankCallCompleted(outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) BankCallCompleted(string, time.Duration) {}

type paymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

type paymentResponse struct {
	Authorized        *bool   `json:"authorized"`
	AuthorizationCode *string `json:"authorization_code"`
}

type responseClass int

const (
	classAuthorized responseClass = iota
	classDeclined
	classMalformedBody
	classClientError
	classUnavailable
	classOtherFailure
)

func (c responseClass) String() string {
	switch c {
	case classAuthorized:
		return "authorized"
	case classDeclined:
		return "declined"
	case classMalformedBody:
		return "malformed_body"
	case classClientError:
		return "client_error"
	case classUnavailable:
		return "unavailable"
	case classOtherFailure:
		return "other_failure"
	default:
		return "unknown"
	}
}

type Option func(*Client)

// WithTimeout bounds each bank call end to end. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// Client talks to the bank's authorization endpoint. It never retries.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	endpoint   string
	observer   Observer
	tracer     trace.Tracer
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse bank url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("bank url %q must be absolute", baseURL)
	}

	c := &Client{
		endpoint: u.JoinPath(paymentsPath).String(),
		observer: nopObserver{},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = &http.Client{Timeout: c.timeout}
	return c, nil
}

func (c *Client) Authorize(ctx context.Context, req *entity.ValidatedPaymentRequest) result.Result[bank.Authorization] {
	ctx, span := c.tracer.Start(ctx, "bank.Authorize", trace.WithAttributes(
		attribute.String("payment.currency", req.Currency().String()),
		attribute.Int64("payment.amount", req.Amount()),
	))
	defer span.End()

	logger := logging.FromContext(ctx).With(
		zap.String("component", "bank_client"),
		zap.String("card_last_four", req.CardLastFour()),
	)

	start := time.Now()
	class, body, reason := c.send(ctx, req)
	elapsed := time.Since(start)

	c.observer.BankCallCompleted(class.String(), elapsed)
	span.SetAttributes(attribute.String("bank.outcome", class.String()))

	var res result.Result[bank.Authorization]
	switch class {
	case classAuthorized:
		code := ""
		if body.AuthorizationCode != nil {
			code = *body.AuthorizationCode
		}
		res = result.Ok(bank.Authorized(code))
	case classDeclined:
		res = result.Ok(bank.Declined())
	case classMalformedBody:
		res = result.Fail[bank.Authorization](apperror.BankError(invalidResponse))
	case classClientError:
		res = result.Fail[bank.Authorization](apperror.BankBadRequest())
	case classUnavailable:
		res = result.Fail[bank.Authorization](apperror.BankError(""))
	case classOtherFailure:
		res = result.Fail[bank.Authorization](apperror.BankError(unavailableReason + ": " + reason))
	default:
		res = result.Fail[bank.Authorization](apperror.Internal(fmt.Sprintf("unhandled bank response class %d", class)))
	}

	if appErr := res.Err(); appErr != nil {
		span.SetStatus(codes.Error, appErr.Description)
		logger.Warn("bank_authorization_failed",
			zap.String("outcome", class.String()),
			zap.String("reason", reason),
			zap.Duration("elapsed", elapsed),
		)
	} else {
		span.SetStatus(codes.Ok, class.String())
		logger.Info("bank_authorization_completed",
			zap.String("outcome", class.String()),
			zap.Duration("elapsed", elapsed),
		)
	}
	return res
}

// send performs the call and classifies what came back. reason carries transport errors
// and the remote reason phrase for logging and error descriptions.
func (c *Client) send(ctx context.Context, req *entity.ValidatedPaymentRequest) (responseClass, *paymentResponse, string) {
	payload, err := json.Marshal(paymentRequest{
		CardNumber: req.CardNumber(),
		ExpiryDate: req.ExpiryDate(),
		Currency:   req.Currency().String(),
		Amount:     req.Amount(),
		CVV:        req.CVV(),
	})
	if err != nil {
		return classClientError, nil, err.Error()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return classClientError, nil, err.Error()
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return classUnavailable, nil, "request cancelled: " + err.Error()
		}
		return classUnavailable, nil, err.Error()
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		return classUnavailable, nil, reasonPhrase(resp)
	case resp.StatusCode == http.StatusBadRequest:
		return classClientError, nil, reasonPhrase(resp)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return classOtherFailure, nil, reasonPhrase(resp)
	}

	var body *paymentResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return classMalformedBody, nil, err.Error()
	}
	if body == nil {
		return classMalformedBody, nil, "empty body"
	}
	if body.Authorized != nil && *body.Authorized {
		return classAuthorized, body, ""
	}
	return classDeclined, body, ""
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
