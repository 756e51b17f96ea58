// Package echoquery plugs query parameter parsing into echo handlers.
package echoquery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codex-k8s/resty/internal/query"
	"github.com/codex-k8s/resty/internal/schema"
)

// FromContext decodes the query string of the request held by c.
func FromContext(c echo.Context) (query.Entries, error) {
	return query.FromRequest(c.Request())
}

// Parse parses the query parameters of the current request with v.
func Parse(c echo.Context, v query.Validator) (map[string]any, error) {
	return query.ParseRequest(c.Request(), v)
}

// Middleware parses query parameters before the handler runs and stores the coerced
// map in the context under key. Validation failures become 400 responses carrying the
// per-field reasons.
func Middleware(v query.Validator, key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			values, err := Parse(c, v)
			if err != nil {
				var verr *schema.ValidationError
				if errors.As(err, &verr) {
					return echo.NewHTTPError(http.StatusBadRequest, verr.Fields)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			c.Set(key, values)
			return next(c)
		}
	}
}

// Values returns the map stored by Middleware under key.
func Values(c echo.Context, key string) map[string]any {
	values, _ := c.Get(key).(map[string]any)
	return values
}
