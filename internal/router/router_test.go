package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/database/databasetest"
	"github.com/deppfellow/storefront-api/internal/handler"
	"github.com/deppfellow/storefront-api/internal/model"
	"github.com/deppfellow/storefront-api/internal/repository"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/deppfellow/storefront-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testAPI struct {
	echo *echo.Echo
	db   *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db := databasetest.New(t)
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	services := service.NewServices(repository.NewRepositories(db))
	return &testAPI{
		echo: NewRouter(s, handler.NewHandlers(s, services)),
		db:   db,
	}
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type endpoint struct {
	path    string
	allowed string
}

var endpoints = []endpoint{
	{"/health", http.MethodGet},
	{"/status", http.MethodGet},
	{"/auth/forgot-password", http.MethodPost},
	{"/auth/me", http.MethodGet},
	{"/customers/abc123", http.MethodGet},
}

func TestPreflightOnEveryEndpoint(t *testing.T) {
	api := newTestAPI(t)

	for _, ep := range endpoints {
		t.Run(ep.path, func(t *testing.T) {
			rec := api.do(http.MethodOptions, ep.path, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			assert.Equal(t, ep.allowed+", OPTIONS", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
			assert.Equal(t, "Content-Type", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
		})
	}
}

func TestMethodNotAllowedOnEveryEndpoint(t *testing.T) {
	api := newTestAPI(t)

	for _, ep := range endpoints {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			if method == ep.allowed {
				continue
			}
			t.Run(ep.path+" "+method, func(t *testing.T) {
				rec := api.do(method, ep.path, "")

				assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
				assert.JSONEq(t, `{"success":false,"error":"Method not allowed"}`, rec.Body.String())
				assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			})
		}
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Backend is running", body["message"])

	ts, ok := body["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestForgotPasswordHidesUserExistence(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Create(&model.User{Email: "ann@shop.test", Password: "hash"}).Error)

	known := api.do(http.MethodPost, "/auth/forgot-password", `{"email":"ann@shop.test"}`)
	unknown := api.do(http.MethodPost, "/auth/forgot-password", `{"email":"ghost@shop.test"}`)

	require.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, known.Code, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
	assert.JSONEq(t,
		`{"success":true,"message":"If an account exists, you will receive password reset instructions."}`,
		known.Body.String())
}

func TestForgotPasswordRequiresEmail(t *testing.T) {
	api := newTestAPI(t)

	for _, body := range []string{`{}`, `{"email":""}`, `{"email":123}`} {
		t.Run(body, func(t *testing.T) {
			rec := api.do(http.MethodPost, "/auth/forgot-password", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"Email is required"}`, rec.Body.String())
		})
	}
}

func TestMeRequiresUserID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/auth/me", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"User ID is required"}`, rec.Body.String())
}

func TestMeNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/auth/me?userId=missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"User not found"}`, rec.Body.String())
}

func TestMeNeverReturnsPassword(t *testing.T) {
	api := newTestAPI(t)
	name := "Ann"
	user := model.User{Email: "ann@shop.test", Name: &name, Password: "$2a$10$secret", Role: model.RoleAdmin}
	require.NoError(t, api.db.Create(&user).Error)

	rec := api.do(http.MethodGet, "/auth/me?userId="+user.ID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")

	data, ok := decode(t, rec)["data"].(map[string]any)
	require.True(t, ok)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"id", "email", "name", "phone", "role", "address",
		"apartment", "city", "state", "zipCode", "country", "createdAt",
	}, keys)
	assert.Equal(t, "Ann", data["name"])
	assert.Equal(t, "admin", data["role"])
}

func TestCustomerNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/customers/abc123", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Customer not found"}`, rec.Body.String())
}

func TestCustomerWithOrders(t *testing.T) {
	api := newTestAPI(t)

	product := model.Product{Name: "Lamp", SKU: "LAMP-1", Price: decimal.RequireFromString("40.00")}
	require.NoError(t, api.db.Create(&product).Error)

	customer := model.Customer{
		Email:     "jane@shop.test",
		Name:      "Jane",
		Addresses: []model.Address{{Line1: "1 Main St", City: "Austin", State: "TX", ZipCode: "73301", Country: "US"}},
	}
	require.NoError(t, api.db.Create(&customer).Error)

	const orders, itemsPerOrder = 4, 3
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < orders; i++ {
		order := model.Order{
			CustomerID: customer.ID,
			Total:      decimal.RequireFromString("120.00"),
			Timestamps: model.Timestamps{CreatedAt: base.Add(time.Duration(i) * 24 * time.Hour)},
		}
		for j := 0; j < itemsPerOrder; j++ {
			order.Items = append(order.Items, model.OrderItem{ProductID: &product.ID, Quantity: 1, Price: product.Price})
		}
		require.NoError(t, api.db.Create(&order).Error)
	}

	rec := api.do(http.MethodGet, "/customers/"+customer.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, customer.ID, data["id"])

	gotOrders := data["orders"].([]any)
	require.Len(t, gotOrders, orders)

	var previous time.Time
	for i, raw := range gotOrders {
		order := raw.(map[string]any)

		createdAt, err := time.Parse(time.RFC3339Nano, order["createdAt"].(string))
		require.NoError(t, err)
		if i > 0 {
			assert.True(t, createdAt.Before(previous), "orders must be sorted newest first")
		}
		previous = createdAt

		items := order["items"].([]any)
		require.Len(t, items, itemsPerOrder)
		for _, rawItem := range items {
			product, ok := rawItem.(map[string]any)["product"].(map[string]any)
			require.True(t, ok, "product must be expanded")
			assert.Equal(t, "LAMP-1", product["sku"])
		}
	}

	addresses := data["addresses"].([]any)
	require.Len(t, addresses, 1)
}

func TestCustomerDatabaseFailure(t *testing.T) {
	api := newTestAPI(t)
	sqlDB, err := api.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := api.do(http.MethodGet, "/customers/abc123", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Route not found"}`, rec.Body.String())
}
