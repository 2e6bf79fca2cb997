package ordersvc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	orderrepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/order"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrBadTransition ErrCode = "BAD_TRANSITION"
	ErrBadStatus     ErrCode = "BAD_STATUS"
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

type Repo interface {
	ListBuy(ctx context.Context, status, search string) ([]model.BuyOrder, error)
	ListRent(ctx context.Context, status, search string) ([]model.RentOrder, error)

	GetBuyStatusForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.BuyOrderStatus, error)
	SetBuyStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.BuyOrderStatus) error

	GetRentForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.RentOrderStatus, float64, error)
	SetRentStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.RentOrderStatus) error
	MarkDepositRefunded(ctx context.Context, tx *sql.Tx, orderID string, amount float64, at time.Time) error
}

type Service interface {
	ListBuy(ctx context.Context, status, search string) ([]model.BuyOrder, error)
	ListRent(ctx context.Context, status, search string) ([]model.RentOrder, error)

	// AdvanceBuy moves a buy order along Pending -> Packed ->
	// Out for Delivery -> Delivered, or to Cancelled from any
	// non-terminal status.
	AdvanceBuy(ctx context.Context, orderID string, to model.BuyOrderStatus) error

	// AdvanceRent moves a rent order along Booked -> Out for Delivery ->
	// Active -> Returned. Reaching Returned records the deposit refund.
	AdvanceRent(ctx context.Context, orderID string, to model.RentOrderStatus) error
}

// txHandle pairs the raw transaction handed to the repository with its
// lifecycle methods. The begin field is swapped out in tests.
type txHandle struct {
	tx       *sql.Tx
	commit   func() error
	rollback func() error
}

type service struct {
	r     Repo
	begin func(ctx context.Context) (txHandle, error)
}

func New(db *sql.DB, r Repo) Service {
	return &service{
		r: r,
		begin: func(ctx context.Context) (txHandle, error) {
			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				return txHandle{}, err
			}
			return txHandle{tx: tx, commit: tx.Commit, rollback: tx.Rollback}, nil
		},
	}
}

func (s *service) ListBuy(ctx context.Context, status, search string) ([]model.BuyOrder, error) {
	return s.r.ListBuy(ctx, status, search)
}

func (s *service) ListRent(ctx context.Context, status, search string) ([]model.RentOrder, error) {
	return s.r.ListRent(ctx, status, search)
}

func (s *service) AdvanceBuy(ctx context.Context, orderID string, to model.BuyOrderStatus) (err error) {
	h, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = h.rollback()
		}
	}()

	from, err := s.r.GetBuyStatusForUpdate(ctx, h.tx, orderID)
	if err != nil {
		if errors.Is(err, orderrepo.ErrNotFound) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if !model.CanTransitionBuy(from, to) {
		return makeErr(ErrBadTransition)
	}
	if err = s.r.SetBuyStatus(ctx, h.tx, orderID, to); err != nil {
		if errors.Is(err, orderrepo.ErrBadStatus) {
			return makeErr(ErrBadStatus)
		}
		return err
	}
	return h.commit()
}

func (s *service) AdvanceRent(ctx context.Context, orderID string, to model.RentOrderStatus) (err error) {
	h, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = h.rollback()
		}
	}()

	from, deposit, err := s.r.GetRentForUpdate(ctx, h.tx, orderID)
	if err != nil {
		if errors.Is(err, orderrepo.ErrNotFound) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if !model.CanTransitionRent(from, to) {
		return makeErr(ErrBadTransition)
	}
	if err = s.r.SetRentStatus(ctx, h.tx, orderID, to); err != nil {
		if errors.Is(err, orderrepo.ErrBadStatus) {
			return makeErr(ErrBadStatus)
		}
		return err
	}

	if to == model.RentReturned {
		// Refund the full deposit; damage deductions happen off-system.
		if err = s.r.MarkDepositRefunded(ctx, h.tx, orderID, deposit, time.Now().UTC()); err != nil {
			return err
		}
	}
	return h.commit()
}
