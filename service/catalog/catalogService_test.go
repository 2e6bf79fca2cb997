package catalogsvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	"github.com/vipinrawat0001/closet-carousel-commerce/repository/cartstore"
	cartsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/cart"
	catalogsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/catalog"
)

type repoMock struct {
	ListFn   func(ctx context.Context, f catalogsvc.Filters) ([]model.Product, error)
	DetailFn func(ctx context.Context, id string) (*model.Product, error)
}

func (m *repoMock) List(ctx context.Context, f catalogsvc.Filters) ([]model.Product, error) {
	return m.ListFn(ctx, f)
}
func (m *repoMock) Detail(ctx context.Context, id string) (*model.Product, error) {
	return m.DetailFn(ctx, id)
}

type memStore struct{ snap cartstore.Snapshot }

func (m *memStore) Load(ctx context.Context, sid string) (cartstore.Snapshot, error) {
	return m.snap, nil
}
func (m *memStore) SaveBuy(ctx context.Context, sid string, lines []model.BuyLine) error {
	m.snap.Buy = lines
	return nil
}
func (m *memStore) SaveRent(ctx context.Context, sid string, lines []model.RentLine) error {
	m.snap.Rent = lines
	return nil
}
func (m *memStore) SaveMode(ctx context.Context, sid string, mode model.ShoppingMode) error {
	m.snap.Mode = string(mode)
	return nil
}

func session(t *testing.T, carts *cartsvc.Manager) *cartsvc.Session {
	t.Helper()
	s, err := carts.Load(context.Background(), "sess-1")
	require.NoError(t, err)
	return s
}

func TestDetailForMode_SwitchesToOtherMode(t *testing.T) {
	ctx := context.Background()
	rentOnly := &model.Product{ID: "p1", Name: "Gown", IsRentable: true}
	repo := &repoMock{DetailFn: func(ctx context.Context, id string) (*model.Product, error) {
		require.Equal(t, "p1", id)
		return rentOnly, nil
	}}
	store := &memStore{}
	carts := cartsvc.NewManager(store)
	svc := catalogsvc.New(repo, carts)

	s := session(t, carts)
	require.Equal(t, model.ModeBuy, s.Mode)

	p, switched, err := svc.DetailForMode(ctx, s, "p1")
	require.NoError(t, err)
	require.True(t, switched)
	require.Equal(t, rentOnly, p)
	require.Equal(t, model.ModeRent, s.Mode)
	require.Equal(t, "rent", store.snap.Mode, "the switch must be persisted")
}

func TestDetailForMode_NoSwitchWhenAvailable(t *testing.T) {
	ctx := context.Background()
	both := &model.Product{ID: "p1", IsPurchasable: true, IsRentable: true}
	repo := &repoMock{DetailFn: func(ctx context.Context, id string) (*model.Product, error) {
		return both, nil
	}}
	store := &memStore{}
	carts := cartsvc.NewManager(store)
	svc := catalogsvc.New(repo, carts)

	s := session(t, carts)
	_, switched, err := svc.DetailForMode(ctx, s, "p1")
	require.NoError(t, err)
	require.False(t, switched)
	require.Equal(t, model.ModeBuy, s.Mode)
	require.Empty(t, store.snap.Mode, "no write without a switch")
}

func TestDetailForMode_RepoErrorPassesThrough(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	repo := &repoMock{DetailFn: func(ctx context.Context, id string) (*model.Product, error) {
		return nil, boom
	}}
	carts := cartsvc.NewManager(&memStore{})
	svc := catalogsvc.New(repo, carts)

	_, _, err := svc.DetailForMode(ctx, session(t, carts), "p1")
	require.ErrorIs(t, err, boom)
}

func TestDetailSurvivesCallerCancellation(t *testing.T) {
	both := &model.Product{ID: "p1", IsPurchasable: true}
	repo := &repoMock{DetailFn: func(ctx context.Context, id string) (*model.Product, error) {
		require.NoError(t, ctx.Err(), "the shared fetch must not inherit the caller's cancellation")
		return both, nil
	}}
	svc := catalogsvc.New(repo, cartsvc.NewManager(&memStore{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := svc.Detail(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, both, p)
}

func TestListDelegates(t *testing.T) {
	ctx := context.Background()
	want := []model.Product{{ID: "p1"}, {ID: "p2"}}
	repo := &repoMock{ListFn: func(ctx context.Context, f catalogsvc.Filters) ([]model.Product, error) {
		require.Equal(t, "rent", string(f.Mode))
		return want, nil
	}}
	svc := catalogsvc.New(repo, cartsvc.NewManager(&memStore{}))

	got, err := svc.List(ctx, catalogsvc.Filters{Mode: model.ModeRent})
	require.NoError(t, err)
	require.Equal(t, want, got)
}
