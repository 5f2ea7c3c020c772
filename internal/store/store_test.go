package store_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evparts_admin/internal/auth"
	"evparts_admin/internal/products"
	"evparts_admin/internal/sales"
	"evparts_admin/internal/store"
	"evparts_admin/internal/users"
)

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

func newSale(productID string, qty int) *sales.Sale {
	now := time.Now()
	return &sales.Sale{
		ID:        uuid.NewString(),
		ProductID: productID,
		Qty:       qty,
		Price:     decimal.NewFromInt(25000),
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRecordSale_DecrementsStock(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 50)

	sale := newSale(p.ID, 2)
	got, err := st.Sales().Record(sale)
	require.NoError(t, err)
	assert.Equal(t, 48, got.Quantity, "Record should return the product after the decrement")

	stored, err := st.Products().Read(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 48, stored.Quantity)

	readBack, err := st.Sales().Read(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, readBack.ProductID)
	assert.Equal(t, 2, readBack.Qty)
	assert.True(t, readBack.Price.Equal(decimal.NewFromInt(25000)))
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 1)

	_, err := st.Sales().Record(newSale(p.ID, 5))
	require.ErrorIs(t, err, products.ErrInsufficientStock)

	stored, err := st.Products().Read(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity, "a rejected sale must not touch stock")

	all, err := st.Sales().GetAll()
	require.NoError(t, err)
	assert.Empty(t, all, "a rejected sale must not be recorded")
}

func TestRecordSale_ProductNotFound(t *testing.T) {
	st := store.New()

	_, err := st.Sales().Record(newSale(uuid.NewString(), 1))
	require.ErrorIs(t, err, products.ErrNotFound)

	all, err := st.Sales().GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecordSale_ConcurrentSalesNeverOverdraw(t *testing.T) {
	const stock = 10
	const buyers = 50

	st := store.New()
	p := seedProduct(t, st, stock)

	var wg sync.WaitGroup
	errs := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Sales().Record(newSale(p.ID, 1))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, failed := 0, 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, products.ErrInsufficientStock)
			failed++
		}
	}
	assert.Equal(t, stock, succeeded, "exactly enough sales should succeed to exhaust stock")
	assert.Equal(t, buyers-stock, failed)

	stored, err := st.Products().Read(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Quantity, "stock must never go negative")

	all, err := st.Sales().GetAll()
	require.NoError(t, err)
	assert.Len(t, all, stock)
}

func TestRecordSale_TwoBuyersOneUnit(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 1)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Sales().Record(newSale(p.ID, 1))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded, failed := 0, 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, products.ErrInsufficientStock)
			failed++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)

	stored, err := st.Products().Read(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Quantity)
}

func TestAttachLedgerRef(t *testing.T) {
	st := store.New()
	p := seedProduct(t, st, 10)
	sale := newSale(p.ID, 1)
	_, err := st.Sales().Record(sale)
	require.NoError(t, err)

	updated, err := st.Sales().AttachLedgerRef(sale.ID, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", updated.LedgerRef)

	// Re-attaching the same reference is a no-op, a different one is a
	// conflict.
	_, err = st.Sales().AttachLedgerRef(sale.ID, "0xabc")
	assert.NoError(t, err)
	_, err = st.Sales().AttachLedgerRef(sale.ID, "0xdef")
	assert.ErrorIs(t, err, sales.ErrRefAlreadyAttached)

	readBack, err := st.Sales().Read(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", readBack.LedgerRef)
}

func TestUserStore_DuplicateUsername(t *testing.T) {
	st := store.New()
	now := time.Now()
	insert := func(id, username string) error {
		return st.Users().Insert(&users.User{
			ID:        id,
			Name:      "Test",
			Username:  username,
			Level:     auth.LevelStaff,
			Status:    1,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	require.NoError(t, insert(uuid.NewString(), "Admin"))
	assert.ErrorIs(t, insert(uuid.NewString(), "admin"), users.ErrDuplicateUsername,
		"username uniqueness is case-insensitive")
}

func TestSnapshotRestore(t *testing.T) {
	st := store.New()
	require.NoError(t, store.Seed(st))

	all, err := st.Products().GetAll()
	require.NoError(t, err)
	require.NotEmpty(t, all)
	_, err = st.Sales().Record(newSale(all[0].ID, 2))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, st.Snapshot(path))

	restored := store.New()
	require.NoError(t, restored.Restore(path))

	p, err := restored.Products().Read(all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 48, p.Quantity, "the decremented stock must survive the round trip")

	admin, err := restored.Users().ReadByUsername("admin")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "admin123"),
		"the password hash must survive the round trip")

	restoredSales, err := restored.Sales().GetAll()
	require.NoError(t, err)
	assert.Len(t, restoredSales, 1)
}
