package cart

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	catalogrepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/catalog"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	cartsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/cart"
	catalogsvc "github.com/vipinrawat0001/closet-carousel-commerce/service/catalog"
	"github.com/vipinrawat0001/closet-carousel-commerce/service/rentalcalc"
)

type Controller struct {
	Carts   *cartsvc.Manager
	Catalog catalogsvc.Service
	V       *validator.Validate
	Log     *slog.Logger
}

func (h *Controller) session(c echo.Context) (*cartsvc.Session, error) {
	sid, _ := c.Get("session_id").(string)
	return h.Carts.Load(c.Request().Context(), sid)
}

func cartErrStatus(err error) (int, string) {
	switch cartsvc.Code(err) {
	case cartsvc.ErrNoStock:
		return http.StatusConflict, "not enough stock for this size"
	case cartsvc.ErrNotAvailable:
		return http.StatusConflict, "item is not available in this mode"
	case cartsvc.ErrSizeRequired:
		return http.StatusBadRequest, "please select a size"
	case cartsvc.ErrBadQuantity:
		return http.StatusBadRequest, "invalid quantity"
	case cartsvc.ErrBadDuration:
		return http.StatusBadRequest, "invalid rental duration"
	case cartsvc.ErrPastStart:
		return http.StatusBadRequest, "start date cannot be in the past"
	}
	return 0, ""
}

// GET /v1/mode
func (h *Controller) GetMode(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"mode": sess.Mode})
}

// PUT /v1/mode
func (h *Controller) SetMode(c echo.Context) error {
	var req SetModeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if err := h.Carts.SetMode(c.Request().Context(), sess, model.ShoppingMode(req.Mode)); err != nil {
		h.Log.Error("set mode", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"mode": sess.Mode})
}

// GET /v1/cart/buy
func (h *Controller) GetBuyCart(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, BuyCartResp{Items: sess.Buy, Summary: sess.BuySummary()})
}

// POST /v1/cart/buy/items
func (h *Controller) AddBuyItem(c echo.Context) error {
	var req AddBuyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	p, err := h.Catalog.Detail(c.Request().Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		h.Log.Error("product fetch", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	line, err := h.Carts.AddBuy(c.Request().Context(), sess, p, model.Size(req.Size), req.Quantity)
	if err != nil {
		if status, msg := cartErrStatus(err); status != 0 {
			return c.JSON(status, echo.Map{"message": msg})
		}
		h.Log.Error("add to buy cart", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("%s (%s) has been added to your cart.", line.Name, line.Size),
		"item":    line,
		"summary": sess.BuySummary(),
	})
}

// PATCH /v1/cart/buy/items/:id
func (h *Controller) UpdateBuyItem(c echo.Context) error {
	var req UpdateQuantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if err := h.Carts.UpdateBuyQuantity(c.Request().Context(), sess, c.Param("id"), req.Quantity); err != nil {
		h.Log.Error("update quantity", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, BuyCartResp{Items: sess.Buy, Summary: sess.BuySummary()})
}

// DELETE /v1/cart/buy/items/:id
func (h *Controller) RemoveBuyItem(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if err := h.Carts.RemoveBuy(c.Request().Context(), sess, c.Param("id")); err != nil {
		h.Log.Error("remove item", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, BuyCartResp{Items: sess.Buy, Summary: sess.BuySummary()})
}

// DELETE /v1/cart/buy
func (h *Controller) ClearBuyCart(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if err := h.Carts.ClearBuy(c.Request().Context(), sess); err != nil {
		h.Log.Error("clear cart", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "cart cleared"})
}

// GET /v1/cart/rent
func (h *Controller) GetRentCart(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, RentCartResp{Items: sess.Rent, Summary: sess.RentSummary()})
}

// POST /v1/cart/rent/items
func (h *Controller) AddRentItem(c echo.Context) error {
	var req AddRentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start date"})
	}

	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	p, err := h.Catalog.Detail(c.Request().Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		}
		h.Log.Error("product fetch", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	line, clamped, err := h.Carts.AddRent(c.Request().Context(), sess, p, model.Size(req.Size), req.DurationDays, start)
	if err != nil {
		if status, msg := cartErrStatus(err); status != 0 {
			return c.JSON(status, echo.Map{"message": msg})
		}
		h.Log.Error("add to rent cart", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	resp := echo.Map{
		"message": fmt.Sprintf("%s (%s) has been added to your rentals.", line.Name, line.Size),
		"item":    line,
		"summary": sess.RentSummary(),
	}
	if clamped {
		resp["notice"] = fmt.Sprintf("Maximum rental period is %d days", line.DurationDays)
	}
	return c.JSON(http.StatusCreated, resp)
}

// PATCH /v1/cart/rent/items/:id
func (h *Controller) UpdateRentItem(c echo.Context) error {
	var req UpdateDurationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	start := time.Now()
	if req.StartDate != "" {
		if start, err = time.Parse("2006-01-02", req.StartDate); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start date"})
		}
		if err = rentalcalc.ValidateStart(start, time.Now()); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "start date cannot be in the past"})
		}
	} else {
		// Keep the line's current start when only the duration changes.
		for _, l := range sess.Rent {
			if l.ID == c.Param("id") {
				start = l.StartDate
				break
			}
		}
	}

	if err := h.Carts.UpdateRentDuration(c.Request().Context(), sess, c.Param("id"), req.DurationDays, start); err != nil {
		if status, msg := cartErrStatus(err); status != 0 {
			return c.JSON(status, echo.Map{"message": msg})
		}
		h.Log.Error("update duration", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, RentCartResp{Items: sess.Rent, Summary: sess.RentSummary()})
}

// DELETE /v1/cart/rent/items/:id
func (h *Controller) RemoveRentItem(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if err := h.Carts.RemoveRent(c.Request().Context(), sess, c.Param("id")); err != nil {
		h.Log.Error("remove rental", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, RentCartResp{Items: sess.Rent, Summary: sess.RentSummary()})
}

// DELETE /v1/cart/rent
func (h *Controller) ClearRentCart(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.Log.Error("session load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if err := h.Carts.ClearRent(c.Request().Context(), sess); err != nil {
		h.Log.Error("clear rentals", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rental cart cleared"})
}
