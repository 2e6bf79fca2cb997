package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	profilerepo "github.com/vipinrawat0001/closet-carousel-commerce/repository/profile"
)

type Controller struct {
	Repo profilerepo.Repo
	Log  *slog.Logger
}

// GET /v1/me
func (h *Controller) Me(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthenticated"})
	}
	p, err := h.Repo.ByID(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, profilerepo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "profile not found"})
		}
		h.Log.Error("profile fetch", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": p, "is_admin": p.IsAdmin()})
}
