package ordersvc

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	orderrepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/order"
)

type repoMock struct {
	GetBuyStatusForUpdateFn func(ctx context.Context, tx *sql.Tx, orderID string) (model.BuyOrderStatus, error)
	SetBuyStatusFn          func(ctx context.Context, tx *sql.Tx, orderID string, to model.BuyOrderStatus) error
	GetRentForUpdateFn      func(ctx context.Context, tx *sql.Tx, orderID string) (model.RentOrderStatus, float64, error)
	SetRentStatusFn         func(ctx context.Context, tx *sql.Tx, orderID string, to model.RentOrderStatus) error
	MarkDepositRefundedFn   func(ctx context.Context, tx *sql.Tx, orderID string, amount float64, at time.Time) error
}

func (m *repoMock) ListBuy(ctx context.Context, status, search string) ([]model.BuyOrder, error) {
	return nil, nil
}
func (m *repoMock) ListRent(ctx context.Context, status, search string) ([]model.RentOrder, error) {
	return nil, nil
}
func (m *repoMock) GetBuyStatusForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.BuyOrderStatus, error) {
	return m.GetBuyStatusForUpdateFn(ctx, tx, orderID)
}
func (m *repoMock) SetBuyStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.BuyOrderStatus) error {
	return m.SetBuyStatusFn(ctx, tx, orderID, to)
}
func (m *repoMock) GetRentForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.RentOrderStatus, float64, error) {
	return m.GetRentForUpdateFn(ctx, tx, orderID)
}
func (m *repoMock) SetRentStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.RentOrderStatus) error {
	return m.SetRentStatusFn(ctx, tx, orderID, to)
}
func (m *repoMock) MarkDepositRefunded(ctx context.Context, tx *sql.Tx, orderID string, amount float64, at time.Time) error {
	return m.MarkDepositRefundedFn(ctx, tx, orderID, amount, at)
}

// txSpy counts commits and rollbacks on a fake transaction handle.
type txSpy struct {
	commits   int
	rollbacks int
}

func testService(r Repo, spy *txSpy) *service {
	return &service{
		r: r,
		begin: func(ctx context.Context) (txHandle, error) {
			return txHandle{
				commit:   func() error { spy.commits++; return nil },
				rollback: func() error { spy.rollbacks++; return nil },
			}, nil
		},
	}
}

func TestAdvanceRent_ReturnedRefundsDeposit(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	refunds := 0
	r := &repoMock{
		GetRentForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.RentOrderStatus, float64, error) {
			require.Equal(t, "r1", id)
			return model.RentActive, 80.00, nil
		},
		SetRentStatusFn: func(ctx context.Context, tx *sql.Tx, id string, to model.RentOrderStatus) error {
			require.Equal(t, model.RentReturned, to)
			return nil
		},
		MarkDepositRefundedFn: func(ctx context.Context, tx *sql.Tx, id string, amount float64, at time.Time) error {
			refunds++
			require.InDelta(t, 80.00, amount, 1e-9)
			require.False(t, at.IsZero())
			return nil
		},
	}

	require.NoError(t, testService(r, spy).AdvanceRent(ctx, "r1", model.RentReturned))
	require.Equal(t, 1, refunds)
	require.Equal(t, 1, spy.commits)
	require.Zero(t, spy.rollbacks)
}

func TestAdvanceRent_NonReturnedSkipsRefund(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	r := &repoMock{
		GetRentForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.RentOrderStatus, float64, error) {
			return model.RentShipping, 80.00, nil
		},
		SetRentStatusFn: func(ctx context.Context, tx *sql.Tx, id string, to model.RentOrderStatus) error {
			return nil
		},
		MarkDepositRefundedFn: func(ctx context.Context, tx *sql.Tx, id string, amount float64, at time.Time) error {
			t.Fatal("refund must only fire on Returned")
			return nil
		},
	}

	require.NoError(t, testService(r, spy).AdvanceRent(ctx, "r1", model.RentActive))
	require.Equal(t, 1, spy.commits)
}

func TestAdvanceRent_IllegalJumpRollsBack(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	r := &repoMock{
		GetRentForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.RentOrderStatus, float64, error) {
			return model.RentBooked, 80.00, nil
		},
		SetRentStatusFn: func(ctx context.Context, tx *sql.Tx, id string, to model.RentOrderStatus) error {
			t.Fatal("illegal transition must not reach the store")
			return nil
		},
	}

	err := testService(r, spy).AdvanceRent(ctx, "r1", model.RentReturned)
	require.Equal(t, ErrBadTransition, Code(err))
	require.Zero(t, spy.commits)
	require.Equal(t, 1, spy.rollbacks)
}

func TestAdvanceRent_NotFound(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	r := &repoMock{
		GetRentForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.RentOrderStatus, float64, error) {
			return "", 0, orderrepo.ErrNotFound
		},
	}

	err := testService(r, spy).AdvanceRent(ctx, "missing", model.RentShipping)
	require.Equal(t, ErrNotFound, Code(err))
	require.Equal(t, 1, spy.rollbacks)
}

func TestAdvanceRent_RepoErrorRollsBack(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	boom := errors.New("write failed")
	r := &repoMock{
		GetRentForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.RentOrderStatus, float64, error) {
			return model.RentActive, 80.00, nil
		},
		SetRentStatusFn: func(ctx context.Context, tx *sql.Tx, id string, to model.RentOrderStatus) error {
			return boom
		},
	}

	err := testService(r, spy).AdvanceRent(ctx, "r1", model.RentCancelled)
	require.ErrorIs(t, err, boom)
	require.Zero(t, spy.commits)
	require.Equal(t, 1, spy.rollbacks)
}

func TestAdvanceBuy_HappyPath(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	r := &repoMock{
		GetBuyStatusForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.BuyOrderStatus, error) {
			return model.BuyPending, nil
		},
		SetBuyStatusFn: func(ctx context.Context, tx *sql.Tx, id string, to model.BuyOrderStatus) error {
			require.Equal(t, model.BuyPacked, to)
			return nil
		},
	}

	require.NoError(t, testService(r, spy).AdvanceBuy(ctx, "o1", model.BuyPacked))
	require.Equal(t, 1, spy.commits)
}

func TestAdvanceBuy_SkippingStatusRejected(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	r := &repoMock{
		GetBuyStatusForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.BuyOrderStatus, error) {
			return model.BuyPending, nil
		},
	}

	err := testService(r, spy).AdvanceBuy(ctx, "o1", model.BuyDelivered)
	require.Equal(t, ErrBadTransition, Code(err))
	require.Equal(t, 1, spy.rollbacks)
}

func TestAdvanceBuy_UnknownStatusMapped(t *testing.T) {
	ctx := context.Background()
	spy := &txSpy{}
	r := &repoMock{
		GetBuyStatusForUpdateFn: func(ctx context.Context, tx *sql.Tx, id string) (model.BuyOrderStatus, error) {
			return model.BuyPending, nil
		},
		SetBuyStatusFn: func(ctx context.Context, tx *sql.Tx, id string, to model.BuyOrderStatus) error {
			return orderrepo.ErrBadStatus
		},
	}

	// Cancelled is a legal target; the store still gets the final say on
	// the enum value.
	err := testService(r, spy).AdvanceBuy(ctx, "o1", model.BuyCancelled)
	require.Equal(t, ErrBadStatus, Code(err))
	require.Equal(t, 1, spy.rollbacks)
}
