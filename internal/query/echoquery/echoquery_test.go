package echoquery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/resty/internal/query"
	"github.com/codex-k8s/resty/internal/schema"
)

const paramsKey = "query"

func itemsSchema() *schema.Schema {
	return schema.MustNew(schema.UnknownRaise,
		schema.Field{Name: "limit", Type: schema.TypeInteger, Required: true},
		schema.Field{Name: "item_id", Type: schema.TypeInteger, List: true},
	)
}

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext(t *testing.T) {
	entries, err := FromContext(newContext("/items?item_id=2&limit=5&item_id=1"))

	require.NoError(t, err)
	assert.Equal(t, query.Entries{
		{Name: "item_id", Value: "2"},
		{Name: "limit", Value: "5"},
		{Name: "item_id", Value: "1"},
	}, entries)
}

func TestParse(t *testing.T) {
	values, err := Parse(newContext("/items?item_id=1&item_id=2&limit=1000"), itemsSchema())

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"limit": 1000, "item_id": []int{1, 2}}, values)
}

func TestMiddleware_StoresValues(t *testing.T) {
	c := newContext("/items?limit=5")
	var seen map[string]any
	handler := Middleware(itemsSchema(), paramsKey)(func(c echo.Context) error {
		seen = Values(c, paramsKey)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, map[string]any{"limit": 5, "item_id": []int{}}, seen)
}

func TestMiddleware_ValidationErrorIsBadRequest(t *testing.T) {
	c := newContext("/items?item_id=1&item_id=2")
	called := false
	handler := Middleware(itemsSchema(), paramsKey)(func(echo.Context) error {
		called = true
		return nil
	})

	err := handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, map[string][]string{"limit": {"Missing data for required field."}}, httpErr.Message)
	assert.False(t, called)
}

func TestMiddleware_MalformedQueryIsBadRequest(t *testing.T) {
	c := newContext("/items?limit=%zz")
	handler := Middleware(itemsSchema(), paramsKey)(func(echo.Context) error { return nil })

	err := handler(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Contains(t, httpErr.Message, "parse query string")
}

func TestValues_Missing(t *testing.T) {
	assert.Nil(t, Values(newContext("/"), paramsKey))
}
