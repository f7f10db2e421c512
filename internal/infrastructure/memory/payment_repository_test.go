package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/Xausdorf/card-gateway/internal/domain/apperror"
	"github.com/Xausdorf/card-gateway/internal/domain/entity"
	"github.com/Xausdorf/card-gateway/internal/infrastructure/memory"
)

func newPayment(id uuid.UUID, status entity.PaymentStatus, amount int64) *entity.Payment {
	return entity.ReconstructPayment(id, status, "1111", 12, 2035, currency.GBP, amount)
}

func TestPaymentRepository_InsertAndFind(t *testing.T) {
	repo := memory.NewPaymentRepository()
	payment := newPayment(uuid.New(), entity.StatusAuthorized, 100)

	require.True(t, repo.Insert(context.Background(), payment).IsSuccess())

	found, err := repo.FindByID(context.Background(), payment.ID()).Unwrap()
	require.Nil(t, err)
	assert.Equal(t, payment.ID(), found.ID())
	assert.Equal(t, entity.StatusAuthorized, found.Status())
	assert.Equal(t, int64(100), found.Amount())
}

func TestPaymentRepository_FindUnknownID(t *testing.T) {
	repo := memory.NewPaymentRepository()

	res := repo.FindByID(context.Background(), uuid.New())

	require.False(t, res.IsSuccess())
	assert.Equal(t, apperror.KindNotFound, res.Err().Kind)
	assert.Equal(t, "Payment not found", res.Err().Description)
}

func TestPaymentRepository_DuplicateInsertKeepsOriginal(t *testing.T) {
	repo := memory.NewPaymentRepository()
	id := uuid.New()

	require.True(t, repo.Insert(context.Background(), newPayment(id, entity.StatusAuthorized, 100)).IsSuccess())

	res := repo.Insert(context.Background(), newPayment(id, entity.StatusDeclined, 999))
	require.False(t, res.IsSuccess())
	assert.Equal(t, apperror.KindInternal, res.Err().Kind)
	assert.Contains(t, res.Err().Description, "Failed to persist payment")

	found, err := repo.FindByID(context.Background(), id).Unwrap()
	require.Nil(t, err)
	assert.Equal(t, entity.StatusAuthorized, found.Status())
	assert.Equal(t, int64(100), found.Amount())
}

func TestPaymentRepository_ConcurrentInserts(t *testing.T) {
	repo := memory.NewPaymentRepository()

	const workers = 50
	ids := make([]uuid.UUID, workers)
	for i := range workers {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func(idx int) {
			defer wg.Done()
			res := repo.Insert(context.Background(), newPayment(ids[idx], entity.StatusDeclined, int64(idx+1)))
			assert.True(t, res.IsSuccess())
		}(i)
	}
	wg.Wait()

	for i, id := range ids {
		found, err := repo.FindByID(context.Background(), id).Unwrap()
		require.Nil(t, err)
		assert.Equal(t, int64(i+1), found.Amount())
	}
}

func TestPaymentRepository_ConcurrentDuplicateInsertsExactlyOneWins(t *testing.T) {
	repo := memory.NewPaymentRepository()
	id := uuid.New()

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	wg.Add(workers)
	for i := range workers {
		go func(idx int) {
			defer wg.Done()
			if repo.Insert(context.Background(), newPayment(id, entity.StatusAuthorized, int64(idx+1))).IsSuccess() {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestPaymentRepository_RepeatedLookupsAreStable(t *testing.T) {
	repo := memory.NewPaymentRepository()
	payment := newPayment(uuid.New(), entity.StatusDeclined, 42)
	require.True(t, repo.Insert(context.Background(), payment).IsSuccess())

	first := repo.FindByID(context.Background(), payment.ID()).Value()
	for range 5 {
		again := repo.FindByID(context.Background(), payment.ID()).Value()
		assert.Equal(t, first, again)
	}
}
