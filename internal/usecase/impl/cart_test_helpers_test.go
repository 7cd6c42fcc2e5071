package impl

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"hafood/config"
	"hafood/internal/domain/entity"
	"hafood/internal/domain/repository"
	"hafood/internal/infra/clock"
	"hafood/internal/infra/persistence/blobstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gocloud.dev/blob/memblob"
)

const testStorageKey = "ha-food-cart"

var testStart = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// logBuffer collects log output written from several goroutines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *logBuffer) Contains(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return strings.Contains(b.buf.String(), s)
}

func createTestLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestSnapshotRepo(t *testing.T) repository.CartSnapshotRepository {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return blobstore.NewCartSnapshotStore(bucket)
}

func createTestCartConfig() config.CartConfig {
	return config.CartConfig{
		StorageKey:     testStorageKey,
		SessionIdleTTL: 30 * time.Minute,
		PersistTimeout: time.Second,
	}
}

func createTestClock() *clock.MockClock {
	return clock.NewMockClock(testStart)
}

func createTestProduct(sku string, price int64, stock int) entity.Product {
	return entity.Product{
		SKU:           sku,
		ProductName:   "Product " + sku,
		CurrentPrice:  decimal.NewFromInt(price),
		OriginalPrice: decimal.NewFromInt(price),
		Available:     true,
		Quantity:      stock,
		Weight:        "500g",
		ProductType:   "frozen",
		Images:        []string{"https://cdn.example.com/" + sku + ".jpg"},
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
