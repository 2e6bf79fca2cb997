package cartstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStoreMissingSessionIsEmpty(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	require.Empty(t, snap.Buy)
	require.Empty(t, snap.Rent)
	require.Empty(t, snap.Mode)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var buy []model.BuyLine
	for i := 0; i < 5; i++ {
		buy = append(buy, model.BuyLine{
			ID:        fmt.Sprintf("buy-%d", i),
			ProductID: fmt.Sprintf("p-%d", i),
			Name:      fmt.Sprintf("Shirt %d", i),
			Size:      model.SizeM,
			UnitPrice: 10.50 + float64(i),
			Quantity:  i + 1,
			Image:     "http://img/x.jpg",
		})
	}
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rent := []model.RentLine{{
		ID:           "rent-1",
		ProductID:    "p-9",
		Name:         "Gown",
		Size:         model.SizeL,
		DailyRate:    22.00,
		Deposit:      80.00,
		DurationDays: 4,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 3),
		TotalPrice:   168.00,
	}}

	require.NoError(t, s.SaveBuy(ctx, "sess-a", buy))
	require.NoError(t, s.SaveRent(ctx, "sess-a", rent))
	require.NoError(t, s.SaveMode(ctx, "sess-a", model.ModeRent))

	snap, err := s.Load(ctx, "sess-a")
	require.NoError(t, err)
	require.Equal(t, buy, snap.Buy)
	require.Equal(t, "rent", snap.Mode)
	require.Len(t, snap.Rent, 1)
	require.Equal(t, rent[0].ID, snap.Rent[0].ID)
	require.True(t, snap.Rent[0].StartDate.Equal(rent[0].StartDate))
	require.True(t, snap.Rent[0].EndDate.Equal(rent[0].EndDate))
	require.InDelta(t, rent[0].TotalPrice, snap.Rent[0].TotalPrice, 1e-9)
}

func TestFileStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SaveMode(ctx, "sess-a", model.ModeRent))
	snap, err := s.Load(ctx, "sess-b")
	require.NoError(t, err)
	require.Empty(t, snap.Mode)
}

func TestFileStorePartialWritesKeepSiblingKeys(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SaveBuy(ctx, "sess-a", []model.BuyLine{{ID: "b1", Quantity: 1}}))
	require.NoError(t, s.SaveMode(ctx, "sess-a", model.ModeRent))

	snap, err := s.Load(ctx, "sess-a")
	require.NoError(t, err)
	require.Len(t, snap.Buy, 1, "mode write must not drop the buy ledger")
	require.Equal(t, "rent", snap.Mode)
}

func TestFileStoreCorruptFileStartsClean(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sess-a.json"), []byte("{not json"), 0o644))

	snap, err := s.Load(ctx, "sess-a")
	require.NoError(t, err)
	require.Empty(t, snap.Buy)
	require.Empty(t, snap.Mode)
}

func TestFileStoreFlattensSessionID(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.SaveMode(ctx, "../../etc/passwd", model.ModeBuy))
	_, err = os.Stat(filepath.Join(dir, "passwd.json"))
	require.NoError(t, err, "crafted IDs must stay inside the data dir")
}
