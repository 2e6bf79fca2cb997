package order

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
	ordersvc "github.com/vipinrawat0001/closet-carousel-commerce/service/order"
)

type Controller struct {
	Svc ordersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == "admin"
}

func (h *Controller) statusErr(c echo.Context, err error, op string) error {
	switch ordersvc.Code(err) {
	case ordersvc.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
	case ordersvc.ErrBadTransition:
		return c.JSON(http.StatusConflict, echo.Map{"message": "status transition not allowed"})
	case ordersvc.ErrBadStatus:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
	}
	h.Log.Error(op, "err", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}

// GET /v1/admin/orders/buy
func (h *Controller) ListBuy(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	rows, err := h.Svc.ListBuy(c.Request().Context(), q.Status, q.Search)
	if err != nil {
		h.Log.Error("buy order list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/admin/orders/rent
func (h *Controller) ListRent(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid query"})
	}
	rows, err := h.Svc.ListRent(c.Request().Context(), q.Status, q.Search)
	if err != nil {
		h.Log.Error("rent order list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// PATCH /v1/admin/orders/buy/:id/status
func (h *Controller) UpdateBuyStatus(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	if err := h.Svc.AdvanceBuy(c.Request().Context(), c.Param("id"), model.BuyOrderStatus(req.Status)); err != nil {
		return h.statusErr(c, err, "buy order status")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated", "status": req.Status})
}

// PATCH /v1/admin/orders/rent/:id/status
func (h *Controller) UpdateRentStatus(c echo.Context) error {
	if !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	if err := h.Svc.AdvanceRent(c.Request().Context(), c.Param("id"), model.RentOrderStatus(req.Status)); err != nil {
		return h.statusErr(c, err, "rent order status")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated", "status": req.Status})
}
