package httpserver

import (
	"errors"
	"io"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// readBody returns the raw request body. A body over the route's limit is
// returned as an error; other read failures are logged and yield an empty
// body, which the domain parsers treat as an empty object.
func readBody(c echo.Context) ([]byte, error) {
	body := c.Request().Body
	if body == nil {
		return nil, nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return nil, httpErr
		}
		slog.WarnContext(c.Request().Context(), "Failed to read request body", "error", err)
		return nil, nil
	}
	return data, nil
}
