package catalogrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

var ErrNotFound = errors.New("product not found")

// Filters narrows the storefront listing. Mode gates on the purchasable or
// rentable flag; the price range applies to the mode-relevant price field.
type Filters struct {
	Mode       model.ShoppingMode
	Categories []string
	Genders    []string
	Colors     []string
	MinPrice   float64
	MaxPrice   float64
	Search     string
}

type Repo interface {
	List(ctx context.Context, f Filters) ([]model.Product, error)
	Detail(ctx context.Context, id string) (*model.Product, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context, f Filters) ([]model.Product, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	priceCol := "p.purchase_price"
	if f.Mode == model.ModeRent {
		where = append(where, "p.is_rentable = TRUE")
		priceCol = "p.rental_price_daily"
	} else {
		where = append(where, "p.is_purchasable = TRUE")
	}
	if len(f.Categories) > 0 {
		where = append(where, "p.category = ANY("+arg(f.Categories)+")")
	}
	if len(f.Genders) > 0 {
		where = append(where, "p.gender = ANY("+arg(f.Genders)+")")
	}
	if len(f.Colors) > 0 {
		where = append(where, "p.color = ANY("+arg(f.Colors)+")")
	}
	if f.MinPrice > 0 {
		where = append(where, priceCol+" >= "+arg(f.MinPrice))
	}
	if f.MaxPrice > 0 {
		where = append(where, priceCol+" <= "+arg(f.MaxPrice))
	}
	if f.Search != "" {
		where = append(where, "p.name ILIKE "+arg("%"+f.Search+"%"))
	}

	q := `
	SELECT p.id, p.sku, p.name, p.description, p.gender, p.category, p.color,
		COALESCE(p.material,''), COALESCE(p.season,''),
		p.purchase_price,
		COALESCE(p.rental_price_daily,0), COALESCE(p.rental_deposit,0), COALESCE(p.rental_max_days,0),
		COALESCE(p.is_purchasable,FALSE), COALESCE(p.is_rentable,FALSE),
		COALESCE(img.image_url,'')
	FROM products p
	LEFT JOIN LATERAL (
		SELECT image_url FROM product_images
		WHERE product_id = p.id
		ORDER BY display_order LIMIT 1
	) img ON TRUE
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY p.created_at DESC, p.id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		var imgURL string
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.Gender, &p.Category, &p.Color,
			&p.Material, &p.Season,
			&p.PurchasePrice,
			&p.RentalPriceDaily, &p.RentalDeposit, &p.RentalMaxDays,
			&p.IsPurchasable, &p.IsRentable,
			&imgURL,
		); err != nil {
			return nil, err
		}
		// Rows violating the rental invariant never leave the adapter.
		if p.Validate() != nil {
			continue
		}
		if imgURL != "" {
			p.Images = []model.Image{{URL: imgURL, DisplayOrder: 0}}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id string) (*model.Product, error) {
	const q = `
	SELECT p.id, p.sku, p.name, p.description, p.gender, p.category, p.color,
		COALESCE(p.material,''), COALESCE(p.season,''),
		p.purchase_price,
		COALESCE(p.rental_price_daily,0), COALESCE(p.rental_deposit,0), COALESCE(p.rental_max_days,0),
		COALESCE(p.is_purchasable,FALSE), COALESCE(p.is_rentable,FALSE)
	FROM products p
	WHERE p.id = $1`

	var p model.Product
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Gender, &p.Category, &p.Color,
		&p.Material, &p.Season,
		&p.PurchasePrice,
		&p.RentalPriceDaily, &p.RentalDeposit, &p.RentalMaxDays,
		&p.IsPurchasable, &p.IsRentable,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	inv, err := r.inventory(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Inventory = inv

	imgs, err := r.images(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Images = imgs

	return &p, nil
}

func (r *repo) inventory(ctx context.Context, productID string) ([]model.Stock, error) {
	const q = `
	SELECT size, buy_stock, rent_stock
	FROM inventory
	WHERE product_id = $1`
	rows, err := r.db.QueryContext(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Stock
	for rows.Next() {
		rec := model.Stock{ProductID: productID}
		if err := rows.Scan(&rec.Size, &rec.BuyStock, &rec.RentStock); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *repo) images(ctx context.Context, productID string) ([]model.Image, error) {
	const q = `
	SELECT image_url, image_type, display_order
	FROM product_images
	WHERE product_id = $1
	ORDER BY display_order`
	rows, err := r.db.QueryContext(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Image
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.URL, &img.Type, &img.DisplayOrder); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}
