package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bab-library/catalog-service/internal/errs"
)

const AdminTokenHeader = "X-Admin-Token"

// adminAuth gates every mutation route behind the session gate. The
// deadline is re-checked on each attempt, so an expired session fails here
// without any timer having fired.
func (h *Handler) adminAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(AdminTokenHeader)
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "no admin token")
		}
		if !h.sessionSvc.Valid(token) {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrSessionExpired.Error())
		}
		return next(c)
	}
}
