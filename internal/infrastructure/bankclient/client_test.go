package bankclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/bankclient"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) BankCallCompleted(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func validRequest(t *testing.T) *entity.ValidatedPaymentRequest {
	t.Helper()
	v := entity.NewValidator(entity.WithClock(func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}))
	res := v.Validate(entity.PaymentRequest{
		CardNumber:  "2222405343248877",
		ExpiryMonth: 4,
		ExpiryYear:  2027,
		Currency:    "gbp",
		Amount:      100,
		CVV:         "123",
	})
	req, appErr := res.Unwrap()
	require.Nil(t, appErr)
	return req
}

func newClient(t *testing.T, handler http.HandlerFunc, opts ...bankclient.Option) *bankclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := bankclient.NewClient(srv.URL, opts...)
	require.NoError(t, err)
	return c
}

func TestAuthorize_SendsWireContract(t *testing.T) {
	var got map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"authorized":true,"authorization_code":"abc-123"}`))
	})

	res := c.Authorize(context.Background(), validRequest(t))

	auth, appErr := res.Unwrap()
	require.Nil(t, appErr)
	assert.True(t, auth.Authorized)
	assert.Equal(t, "abc-123", auth.AuthorizationCode)

	assert.Equal(t, "2222405343248877", got["card_number"])
	assert.Equal(t, "04/2027", got["expiry_date"])
	assert.Equal(t, "GBP", got["currency"])
	assert.EqualValues(t, 100, got["amount"])
	assert.Equal(t, "123", got["cvv"])
}

func TestAuthorize_Classification(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantOK       bool
		wantAuth     bool
		wantCode     string
		wantKind     apperror.Kind
		wantDesc     string
		wantObserved string
	}{
		{
			name:         "authorized without code",
			status:       http.StatusOK,
			body:         `{"authorized":true}`,
			wantOK:       true,
			wantAuth:     true,
			wantObserved: "authorized",
		},
		{
			name:         "declined",
			status:       http.StatusOK,
			body:         `{"authorized":false,"authorization_code":"ignored"}`,
			wantOK:       true,
			wantObserved: "declined",
		},
		{
			name:         "null authorized is declined",
			status:       http.StatusOK,
			body:         `{"authorized":null}`,
			wantOK:       true,
			wantObserved: "declined",
		},
		{
			name:         "null body",
			status:       http.StatusOK,
			body:         `null`,
			wantKind:     apperror.KindSubServiceUnavailable,
			wantDesc:     "Bank payment response is invalid",
			wantObserved: "malformed_body",
		},
		{
			name:         "empty body",
			status:       http.StatusOK,
			body:         ``,
			wantKind:     apperror.KindSubServiceUnavailable,
			wantDesc:     "Bank payment response is invalid",
			wantObserved: "malformed_body",
		},
		{
			name:         "garbage body",
			status:       http.StatusOK,
			body:         `not json`,
			wantKind:     apperror.KindSubServiceUnavailable,
			wantDesc:     "Bank payment response is invalid",
			wantObserved: "malformed_body",
		},
		{
			name:         "bad request",
			status:       http.StatusBadRequest,
			wantKind:     apperror.KindInternal,
			wantDesc:     "Invalid request sent to Bank",
			wantObserved: "client_error",
		},
		{
			name:         "service unavailable",
			status:       http.StatusServiceUnavailable,
			wantKind:     apperror.KindSubServiceUnavailable,
			wantDesc:     "Bank Service Unavailable",
			wantObserved: "unavailable",
		},
		{
			name:         "other failure carries reason phrase",
			status:       http.StatusInternalServerError,
			wantKind:     apperror.KindSubServiceUnavailable,
			wantDesc:     "Bank Service Unavailable: Internal Server Error",
			wantObserved: "other_failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &recordingObserver{}
			c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, bankclient.WithObserver(obs))

			res := c.Authorize(context.Background(), validRequest(t))

			require.Equal(t, tt.wantOK, res.IsSuccess())
			if tt.wantOK {
				assert.Equal(t, tt.wantAuth, res.Value().Authorized)
				assert.Equal(t, tt.wantCode, res.Value().AuthorizationCode)
			} else {
				require.NotNil(t, res.Err())
				assert.Equal(t, tt.wantKind, res.Err().Kind)
				assert.Equal(t, tt.wantDesc, res.Err().Description)
			}
			assert.Equal(t, []string{tt.wantObserved}, obs.outcomes)
		})
	}
}

func TestAuthorize_DeclinedHasEmptyCode(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"authorized":false,"authorization_code":"xyz"}`))
	})

	res := c.Authorize(context.Background(), validRequest(t))

	require.True(t, res.IsSuccess())
	assert.False(t, res.Value().Authorized)
	assert.Empty(t, res.Value().AuthorizationCode)
}

func TestAuthorize_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := bankclient.NewClient(url)
	require.NoError(t, err)

	res := c.Authorize(context.Background(), validRequest(t))

	require.False(t, res.IsSuccess())
	assert.Equal(t, apperror.KindSubServiceUnavailable, res.Err().Kind)
	assert.Equal(t, "Bank Service Unavailable", res.Err().Description)
}

func TestAuthorize_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, bankclient.WithTimeout(50*time.Millisecond))
	defer close(release)

	res := c.Authorize(context.Background(), validRequest(t))

	require.False(t, res.IsSuccess())
	assert.Equal(t, apperror.KindSubServiceUnavailable, res.Err().Kind)
}

func TestAuthorize_TimeoutIndependentOfOptionOrder(t *testing.T) {
	for name, order := range map[string]func(*recordingObserver) []bankclient.Option{
		"timeout first": func(o *recordingObserver) []bankclient.Option {
			return []bankclient.Option{bankclient.WithTimeout(50 * time.Millisecond), bankclient.WithObserver(o)}
		},
		"timeout last": func(o *recordingObserver) []bankclient.Option {
			return []bankclient.Option{bankclient.WithObserver(o), bankclient.WithTimeout(50 * time.Millisecond)}
		},
	} {
		t.Run(name, func(t *testing.T) {
			release := make(chan struct{})
			obs := &recordingObserver{}
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-release:
				case <-r.Context().Done():
				}
			}, order(obs)...)
			defer close(release)

			res := c.Authorize(context.Background(), validRequest(t))

			require.False(t, res.IsSuccess())
			assert.Equal(t, apperror.KindSubServiceUnavailable, res.Err().Kind)
			assert.Equal(t, []string{"unavailable"}, obs.outcomes)
		})
	}
}

func TestAuthorize_CancelledContext(t *testing.T) {
	calls := 0
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"authorized":true}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := c.Authorize(ctx, validRequest(t))

	require.False(t, res.IsSuccess())
	assert.Equal(t, apperror.KindSubServiceUnavailable, res.Err().Kind)
	assert.Zero(t, calls)
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := bankclient.NewClient("localhost:8080")
	require.Error(t, err)

	_, err = bankclient.NewClient("/payments")
	require.Error(t, err)
}
