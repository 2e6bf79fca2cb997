package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrBadStatus = errors.New("status not recognized by the store")
)

type Repo interface {
	ListBuy(ctx context.Context, status, search string) ([]model.BuyOrder, error)
	ListRent(ctx context.Context, status, search string) ([]model.RentOrder, error)

	GetBuyStatusForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.BuyOrderStatus, error)
	SetBuyStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.BuyOrderStatus) error

	GetRentForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.RentOrderStatus, float64, error)
	SetRentStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.RentOrderStatus) error
	MarkDepositRefunded(ctx context.Context, tx *sql.Tx, orderID string, amount float64, at time.Time) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListBuy(ctx context.Context, status, search string) ([]model.BuyOrder, error) {
	const q = `
	SELECT id, COALESCE(user_id::text,''), COALESCE(status,'Pending'), total_amount,
		shipping_address, shipping_city, shipping_state, shipping_postal_code,
		created_at, updated_at
	FROM buy_orders
	WHERE ($1 = '' OR status::text = $1)
	AND ($2 = '' OR id::text ILIKE '%' || $2 || '%' OR shipping_city ILIKE '%' || $2 || '%')
	ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, status, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BuyOrder
	for rows.Next() {
		var o model.BuyOrder
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Status, &o.TotalAmount,
			&o.Address, &o.City, &o.State, &o.PostalCode,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repo) ListRent(ctx context.Context, status, search string) ([]model.RentOrder, error) {
	const q = `
	SELECT id, COALESCE(user_id::text,''), COALESCE(status,'Booked'),
		total_rent_amount, total_deposit,
		rent_start_date, rent_end_date,
		COALESCE(deposit_refunded,FALSE), refund_amount, refund_date,
		created_at
	FROM rent_orders
	WHERE ($1 = '' OR status::text = $1)
	AND ($2 = '' OR id::text ILIKE '%' || $2 || '%')
	ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, status, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RentOrder
	for rows.Next() {
		var o model.RentOrder
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Status,
			&o.TotalRentAmount, &o.TotalDeposit,
			&o.RentStartDate, &o.RentEndDate,
			&o.DepositRefunded, &o.RefundAmount, &o.RefundDate,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *repo) GetBuyStatusForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.BuyOrderStatus, error) {
	const q = `
	SELECT COALESCE(status,'Pending')
	FROM buy_orders
	WHERE id = $1
	FOR UPDATE`
	var st model.BuyOrderStatus
	err := tx.QueryRowContext(ctx, q, orderID).Scan(&st)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return st, err
}

func (r *repo) SetBuyStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.BuyOrderStatus) error {
	const q = `
	UPDATE buy_orders
	SET status = $2,
		updated_at = NOW()
	WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, orderID, to)
	return mapEnumErr(err)
}

func (r *repo) GetRentForUpdate(ctx context.Context, tx *sql.Tx, orderID string) (model.RentOrderStatus, float64, error) {
	const q = `
	SELECT COALESCE(status,'Booked'), total_deposit
	FROM rent_orders
	WHERE id = $1
	FOR UPDATE`
	var st model.RentOrderStatus
	var deposit float64
	err := tx.QueryRowContext(ctx, q, orderID).Scan(&st, &deposit)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, ErrNotFound
	}
	return st, deposit, err
}

func (r *repo) SetRentStatus(ctx context.Context, tx *sql.Tx, orderID string, to model.RentOrderStatus) error {
	const q = `
	UPDATE rent_orders
	SET status = $2
	WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, orderID, to)
	return mapEnumErr(err)
}

func (r *repo) MarkDepositRefunded(ctx context.Context, tx *sql.Tx, orderID string, amount float64, at time.Time) error {
	const q = `
	UPDATE rent_orders
	SET deposit_refunded = TRUE,
		refund_amount = $2,
		refund_date = $3
	WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, orderID, amount, at)
	return err
}

// mapEnumErr converts a Postgres enum rejection into ErrBadStatus so the
// service can answer 400 instead of 500.
func mapEnumErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation {
		return ErrBadStatus
	}
	return err
}
