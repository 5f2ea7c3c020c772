package sales_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"evparts_admin/internal/ledger"
	"evparts_admin/internal/products"
	"evparts_admin/internal/sales"
	"evparts_admin/internal/store"
)

// stubMirror stands in for the ledger client.
type stubMirror struct {
	ref string
	err error

	mu     sync.Mutex
	calls  []ledger.SaleFacts
	called chan struct{}
}

func newStubMirror(ref string, err error) *stubMirror {
	return &stubMirror{ref: ref, err: err, called: make(chan struct{}, 1)}
}

func (m *stubMirror) RecordSale(_ context.Context, facts ledger.SaleFacts) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, facts)
	m.mu.Unlock()
	select {
	case m.called <- struct{}{}:
	default:
	}
	if m.err != nil {
		return "", m.err
	}
	return m.ref, nil
}

func (m *stubMirror) facts(t *testing.T) ledger.SaleFacts {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.Len(t, m.calls, 1)
	return m.calls[0]
}

func seedProduct(t *testing.T, st *store.Store, qty int) *products.Product {
	t.Helper()
	now := time.Now()
	p := &products.Product{
		ID:         uuid.NewString(),
		Name:       "Hub Motor 900W",
		Quantity:   qty,
		BuyPrice:   decimal.NewFromInt(8000),
		SalePrice:  decimal.NewFromInt(12500),
		CategoryID: uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, st.Products().Insert(p))
	return p
}

func TestCreateSale_RecordsAndDecrements(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 50)
	svc := sales.NewService(st.Sales(), nil, zaptest.NewLogger(t))

	sale, err := svc.CreateSale(p.ID, 2, decimal.NewFromInt(25000), time.Time{})
	require.NoError(t, err)
	assert.NotEmpty(t, sale.ID)
	assert.False(t, sale.Date.IsZero(), "the date defaults to now")
	assert.False(t, sale.Mirrored())

	stored, err := st.Products().Read(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, stored.Quantity)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 1)
	svc := sales.NewService(st.Sales(), nil, zaptest.NewLogger(t))

	sale, err := svc.CreateSale(p.ID, 5, decimal.NewFromInt(25000), time.Time{})
	require.ErrorIs(t, err, products.ErrInsufficientStock)
	assert.Nil(t, sale)

	stored, err := st.Products().Read(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)

	views, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCreateSale_ProductNotFound(t *testing.T) {
	st := store.New()
	svc := sales.NewService(st.Sales(), nil, zaptest.NewLogger(t))

	_, err := svc.CreateSale(uuid.NewString(), 1, decimal.NewFromInt(100), time.Time{})
	assert.ErrorIs(t, err, products.ErrNotFound)
}

func TestCreateSale_RejectsInvalidInput(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 10)
	svc := sales.NewService(st.Sales(), nil, zaptest.NewLogger(t))

	_, err := svc.CreateSale(p.ID, 0, decimal.NewFromInt(100), time.Time{})
	assert.Error(t, err, "zero quantity is rejected")

	_, err = svc.CreateSale(p.ID, 1, decimal.Zero, time.Time{})
	assert.Error(t, err, "zero price is rejected")

	_, err = svc.CreateSale("", 1, decimal.NewFromInt(100), time.Time{})
	assert.Error(t, err, "missing product is rejected")
}

func TestCreateSale_MirrorAttachesLedgerRef(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 50)
	mirror := newStubMirror("0xdeadbeef", nil)
	svc := sales.NewService(st.Sales(), mirror, zaptest.NewLogger(t))

	sale, err := svc.CreateSale(p.ID, 2, decimal.NewFromInt(25000), time.Time{})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(sale.ID)
		return err == nil && got.LedgerRef == "0xdeadbeef"
	}, time.Second, 10*time.Millisecond, "the mirror ref should be attached in the background")

	facts := mirror.facts(t)
	assert.Equal(t, sale.ID, facts.SaleID)
	assert.Equal(t, p.ID, facts.ProductID)
	assert.Equal(t, "Hub Motor 900W", facts.ProductName)
	assert.Equal(t, 2, facts.Qty)
}

func TestCreateSale_MirrorFailureLeavesSaleUnmirrored(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 50)
	mirror := newStubMirror("", errors.New("ledger unreachable"))
	svc := sales.NewService(st.Sales(), mirror, zaptest.NewLogger(t))

	sale, err := svc.CreateSale(p.ID, 2, decimal.NewFromInt(25000), time.Time{})
	require.NoError(t, err, "a ledger failure must not fail the sale")

	select {
	case <-mirror.called:
	case <-time.After(time.Second):
		t.Fatal("mirror was never called")
	}
	time.Sleep(50 * time.Millisecond)

	got, err := svc.Get(sale.ID)
	require.NoError(t, err)
	assert.False(t, got.Mirrored(), "the sale stays unmirrored")

	stored, err := st.Products().Read(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, stored.Quantity, "the committed decrement stays committed")
}

func TestAttachLedgerRef(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 10)
	svc := sales.NewService(st.Sales(), nil, zaptest.NewLogger(t))

	sale, err := svc.CreateSale(p.ID, 1, decimal.NewFromInt(100), time.Time{})
	require.NoError(t, err)

	updated, err := svc.AttachLedgerRef(sale.ID, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", updated.LedgerRef)

	_, err = svc.AttachLedgerRef(sale.ID, "0xdef")
	assert.ErrorIs(t, err, sales.ErrRefAlreadyAttached)

	_, err = svc.AttachLedgerRef(sale.ID, "")
	assert.Error(t, err, "an empty reference is rejected")

	_, err = svc.AttachLedgerRef(uuid.NewString(), "0xabc")
	assert.ErrorIs(t, err, sales.ErrNotFound)
}

func TestList_JoinsProductNames(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 10)
	svc := sales.NewService(st.Sales(), nil, zaptest.NewLogger(t))

	_, err := svc.CreateSale(p.ID, 1, decimal.NewFromInt(100), time.Time{})
	require.NoError(t, err)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Hub Motor 900W", views[0].ProductName)

	// Sales survive product deletion and list with a placeholder name.
	require.NoError(t, st.Products().Delete(p.ID))
	views, err = svc.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Deleted Product", views[0].ProductName)
}

func TestRecent_CapsResults(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 100)
	svc := sales.NewService(st.Sales(), nil, zaptest.NewLogger(t))

	for i := 0; i < 8; i++ {
		date := time.Now().AddDate(0, 0, -i)
		_, err := svc.CreateSale(p.ID, 1, decimal.NewFromInt(100), date)
		require.NoError(t, err)
	}

	views, err := svc.Recent(5)
	require.NoError(t, err)
	assert.Len(t, views, 5)

	// Newest first.
	for i := 1; i < len(views); i++ {
		assert.GreaterOrEqual(t, views[i-1].Date, views[i].Date)
	}
}
