// Package cart owns the only mutable, locally-owned state in the system:
// the per-session buy and rent ledgers and the shopping mode. Catalog and
// inventory flow in as read-only snapshots; every mutation is validated
// here, applied in memory and written through to the session store.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	"github.com/vipinrawat0001/closet-carousel-commerce/repository/cartstore"
)

// errors used by controllers

type ErrCode string

const (
	ErrNoStock      ErrCode = "NO_STOCK"
	ErrNotAvailable ErrCode = "NOT_AVAILABLE"
	ErrSizeRequired ErrCode = "SIZE_REQUIRED"
	ErrBadQuantity  ErrCode = "BAD_QUANTITY"
	ErrBadDuration  ErrCode = "BAD_DURATION"
	ErrPastStart    ErrCode = "PAST_START"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Store persists session snapshots; satisfied by cartstore.FileStore and
// cartstore.RedisStore.
type Store interface {
	Load(ctx context.Context, sessionID string) (cartstore.Snapshot, error)
	SaveBuy(ctx context.Context, sessionID string, lines []model.BuyLine) error
	SaveRent(ctx context.Context, sessionID string, lines []model.RentLine) error
	SaveMode(ctx context.Context, sessionID string, mode model.ShoppingMode) error
}

// Session is the explicit per-caller state object. Nothing in the service
// is global: every component that needs the mode or a cart receives a
// Session.
type Session struct {
	ID   string
	Mode model.ShoppingMode
	Buy  []model.BuyLine
	Rent []model.RentLine
}

type Manager struct {
	store Store
	newID func() string
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Load materializes the session from the store. Missing state yields an
// empty session in buy mode; an unknown persisted mode falls back to buy.
func (m *Manager) Load(ctx context.Context, sessionID string) (*Session, error) {
	snap, err := m.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:   sessionID,
		Mode: model.ParseMode(snap.Mode),
		Buy:  snap.Buy,
		Rent: snap.Rent,
	}, nil
}

// SetMode switches the session between buy and rent and persists the
// choice. Only explicit user action and the product-detail force switch
// call this.
func (m *Manager) SetMode(ctx context.Context, s *Session, mode model.ShoppingMode) error {
	mode = model.ParseMode(string(mode))
	if err := m.store.SaveMode(ctx, s.ID, mode); err != nil {
		return err
	}
	s.Mode = mode
	return nil
}
