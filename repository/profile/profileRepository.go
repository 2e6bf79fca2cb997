package profilerepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

var ErrNotFound = errors.New("profile not found")

type Repo interface {
	ByID(ctx context.Context, id string) (*model.Profile, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) ByID(ctx context.Context, id string) (*model.Profile, error) {
	const q = `
	SELECT id, COALESCE(first_name,''), COALESCE(last_name,''),
		COALESCE(phone,''), COALESCE(address,''), COALESCE(city,''),
		COALESCE(state,''), COALESCE(postal_code,''), COALESCE(country,''),
		role, created_at
	FROM profiles
	WHERE id = $1`
	var p model.Profile
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.FirstName, &p.LastName,
		&p.Phone, &p.Address, &p.City,
		&p.State, &p.PostalCode, &p.Country,
		&p.Role, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
