package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	catalogrepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/catalog"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/availability"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/cart"
	catalogsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/catalog"
)

type Controller struct {
	Svc   catalogsvc.Service
	Carts *cart.Manager
	V     *validator.Validate
	Log   *slog.Logger
}

func (h *Controller) session(c echo.Context) (*cart.Session, error) {
	sid, _ := c.Get("session_id").(string)
	return h.Carts.Load(c.Request().Context(), sid)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GET /v1/products
func (h *Controller) List(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	if err := h.V.Struct(q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	rows, err := h.Svc.List(c.Request().Context(), catalogsvc.Filters{
		Mode:       sess.Mode,
		Categories: splitCSV(q.Category),
		Genders:    splitCSV(q.Gender),
		Colors:     splitCSV(q.Color),
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Search:     q.Search,
	})
	if err != nil {
		h.Log.Error("product list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"mode": sess.Mode, "data": rows})
}

// GET /v1/products/:id
func (h *Controller) Detail(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	p, switched, err := h.Svc.DetailForMode(c.Request().Context(), sess, id)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		if errors.Is(err, model.ErrBadProductRow) {
			h.Log.Error("product row rejected", "id", id, "err", err)
			return c.JSON(http.StatusBadGateway, echo.Map{"message": "product data unavailable"})
		}
		h.Log.Error("product detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	resp := DetailResp{
		Product:        p,
		Mode:           sess.Mode,
		AvailableSizes: availability.Sizes(p.Inventory, sess.Mode),
		ModeSwitched:   switched,
	}
	if switched {
		verb := "rent"
		if sess.Mode == model.ModeBuy {
			verb = "buy"
		}
		resp.Notice = fmt.Sprintf("This item is only available to %s.", verb)
	}
	return c.JSON(http.StatusOK, resp)
}
