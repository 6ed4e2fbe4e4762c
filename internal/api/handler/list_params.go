package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/core/query"
)

// parseWindow reads skip/limit from the query string. Missing parameters fall
// back to the defaults; non-numeric values are rejected. Range validation
// (negative values, limit cap) happens in the service layer so the rules live
// in one place.
func parseWindow(c echo.Context) (query.Window, error) {
	w := query.DefaultWindow()

	if raw := c.QueryParam("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return w, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("skip must be an integer, got %q", raw))
		}
		w.Skip = n
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return w, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("limit must be an integer, got %q", raw))
		}
		w.Limit = n
	}
	return w, nil
}
