package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrAlreadyRecorded is returned when a sale ID is recorded a second
// time. The stored record is left untouched.
var ErrAlreadyRecorded = errors.New("sale ID already recorded")

// ErrNotRecorded is returned when a sale ID is not on the ledger.
var ErrNotRecorded = errors.New("sale not recorded")

// Record is one append-only ledger entry. A sale ID is either absent
// from the ledger or recorded exactly once; there is no update and no
// delete. Price is in integer minor currency units (paise).
type Record struct {
	SaleID      string    `json:"sale_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Qty         int       `json:"qty"`
	Price       int64     `json:"price"`
	Submitter   string    `json:"submitter"`
	Ref         string    `json:"ref"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Ledger is the append-only sale record store used for independent
// audit. Every successful Record emits one event to each subscriber.
type Ledger struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
	subs    []func(Record)
	logger  *zap.Logger
}

// New creates an empty Ledger.
func New(logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		records: map[string]*Record{},
		logger:  logger,
	}
}

// Subscribe registers a callback invoked once for every newly recorded
// sale. Callbacks run synchronously on the recording goroutine.
func (l *Ledger) Subscribe(fn func(Record)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}

// Record appends a sale to the ledger. A duplicate sale ID fails with
// ErrAlreadyRecorded; nothing is overwritten.
func (l *Ledger) Record(saleID, productID, productName string, qty int, price int64, submitter string) (*Record, error) {
	if saleID == "" {
		return nil, fmt.Errorf("sale ID is required")
	}
	if productID == "" {
		return nil, fmt.Errorf("product ID is required")
	}
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be greater than zero")
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if submitter == "" {
		return nil, fmt.Errorf("submitter address is required")
	}

	l.mu.Lock()
	if _, exists := l.records[saleID]; exists {
		l.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRecorded, saleID)
	}

	now := time.Now().UTC()
	rec := &Record{
		SaleID:      saleID,
		ProductID:   productID,
		ProductName: productName,
		Qty:         qty,
		Price:       price,
		Submitter:   submitter,
		Ref:         txRef(saleID, submitter, now, len(l.order)),
		RecordedAt:  now,
	}
	l.records[saleID] = rec
	l.order = append(l.order, saleID)
	subs := make([]func(Record), len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	l.logger.Info("sale recorded on ledger",
		zap.String("sale_id", saleID),
		zap.String("submitter", submitter),
		zap.String("ref", rec.Ref),
	)

	for _, fn := range subs {
		fn(*rec)
	}

	out := *rec
	return &out, nil
}

// Get returns the record for a sale ID.
func (l *Ledger) Get(saleID string) (*Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, ok := l.records[saleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRecorded, saleID)
	}
	out := *rec
	return &out, nil
}

// SaleIDs returns every recorded sale ID in the order recorded.
func (l *Ledger) SaleIDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]string, len(l.order))
	copy(ids, l.order)
	return ids
}

// Count returns the number of recorded sales.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// txRef derives the transaction reference handed back to submitters.
func txRef(saleID, submitter string, at time.Time, seq int) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%d", saleID, submitter, at.UnixNano(), seq)))
	return "0x" + hex.EncodeToString(h[:])
}
