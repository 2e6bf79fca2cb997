package catalogsvc

import (
	"context"

	"golang.org/x/sync/singleflight"

	catalogrepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/catalog"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/availability"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/cart"
)

type Filters = catalogrepo.Filters

type Repo interface {
	List(ctx context.Context, f Filters) ([]model.Product, error)
	Detail(ctx context.Context, id string) (*model.Product, error)
}

type Service interface {
	List(ctx context.Context, f Filters) ([]model.Product, error)
	Detail(ctx context.Context, id string) (*model.Product, error)

	// DetailForMode loads a product and applies the force switch: when the
	// product is unavailable in the session's mode but available in the
	// other, the session flips modes and switched is true so the caller
	// can notify the user.
	DetailForMode(ctx context.Context, s *cart.Session, id string) (p *model.Product, switched bool, err error)
}

type service struct {
	r     Repo
	carts *cart.Manager
	sfg   singleflight.Group // collapses concurrent detail fetches per product
}

func New(r Repo, carts *cart.Manager) Service {
	return &service{r: r, carts: carts}
}

func (s *service) List(ctx context.Context, f Filters) ([]model.Product, error) {
	return s.r.List(ctx, f)
}

func (s *service) Detail(ctx context.Context, id string) (*model.Product, error) {
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		// Waiters may outlive the caller that started the flight, so its
		// cancellation must not fail the shared fetch.
		return s.r.Detail(context.WithoutCancel(ctx), id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Product), nil
}

func (s *service) DetailForMode(ctx context.Context, sess *cart.Session, id string) (*model.Product, bool, error) {
	p, err := s.Detail(ctx, id)
	if err != nil {
		return nil, false, err
	}
	target, switched := availability.SwitchTarget(p, sess.Mode)
	if switched {
		if err := s.carts.SetMode(ctx, sess, target); err != nil {
			return nil, false, err
		}
	}
	return p, switched, nil
}
