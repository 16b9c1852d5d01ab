package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/fixture"
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	users map[int64]*model.User
}

func (s *stubUsers) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	return s.users[id], nil
}

func (s *stubUsers) AddUser(_ context.Context, u *model.NewUser) (*model.User, error) {
	id := int64(len(s.users) + 1)
	s.users[id] = &model.User{ID: id, Name: u.Name, Email: u.Email, Password: u.Password}
	return s.users[id], nil
}

type stubReservations struct {
	guestID int64
	limit   int
}

func (s *stubReservations) GetReservationsForGuest(_ context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error) {
	s.guestID, s.limit = guestID, limit
	return []model.ReservationWithProperty{}, nil
}

// stubProperties lists nothing and writes through to the fixture store.
type stubProperties struct {
	*fixture.Store
	filters model.PropertyFilters
	limit   int
}

func (s *stubProperties) GetAllProperties(_ context.Context, filters model.PropertyFilters, limit int) ([]model.PropertyWithRating, error) {
	s.filters, s.limit = filters, limit
	return []model.PropertyWithRating{}, nil
}

type testApp struct {
	router       *echo.Echo
	reservations *stubReservations
	properties   *stubProperties
	fixtures     *fixture.Store
}

func newTestApp(t *testing.T, rateLimit config.RateLimitConfig) *testApp {
	t.Helper()

	fixtures, err := fixture.Load("")
	require.NoError(t, err)

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "0",
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger:   &logger,
		Fixtures: fixtures,
	}

	users := &stubUsers{users: map[int64]*model.User{
		1: {ID: 1, Name: "Devin Sanders", Email: "tristanjacobs@gmail.com", Password: "$2a$10$hash"},
	}}
	reservations := &stubReservations{}
	properties := &stubProperties{Store: fixtures}

	services := &service.Services{
		Users:        service.NewUserService(users, &logger),
		Reservations: service.NewReservationService(reservations),
		Properties:   service.NewPropertyService(properties),
	}

	return &testApp{
		router:       NewRouter(s, handler.NewHandlers(s, services)),
		reservations: reservations,
		properties:   properties,
		fixtures:     fixtures,
	}
}

func (a *testApp) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestStatus_ReportsMissingDatabase(t *testing.T) {
	app := newTestApp(t, config.RateLimitConfig{})

	rec := app.do(http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "test", body["environment"])
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "unhealthy", checks["database"].(map[string]any)["status"])
	assert.Equal(t, "healthy", checks["fixtures"].(map[string]any)["status"])
}

func TestUsers(t *testing.T) {
	app := newTestApp(t, config.RateLimitConfig{})

	t.Run("by id hides the password", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/users/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "tristanjacobs@gmail.com", body["email"])
		assert.NotContains(t, body, "password")
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/users/42", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, rec)["code"])
	})

	t.Run("id beyond the column range", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/users/3000000000", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, rec)["code"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/users/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("by email", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/users?email=tristanjacobs@gmail.com", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decode(t, rec)["id"])
	})

	t.Run("lookup accepts any non-empty email", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/users?email=tristanjacobs", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decode(t, rec)["code"])
	})

	t.Run("email required", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/users", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Validation failed", body["message"])
		assert.NotEmpty(t, body["errors"])
	})

	t.Run("create", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/api/users", `{"name":"Kavi","email":"kavi@example.com","password":"pw"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, float64(2), body["id"])
		assert.NotContains(t, body, "password")
	})

	t.Run("create rejects invalid email", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/api/users", `{"name":"Kavi","email":"nope","password":"pw"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReservations_PassesGuestAndLimit(t *testing.T) {
	app := newTestApp(t, config.RateLimitConfig{})

	rec := app.do(http.MethodGet, "/api/users/3/reservations?limit=4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, int64(3), app.reservations.guestID)
	assert.Equal(t, 4, app.reservations.limit)

	rec = app.do(http.MethodGet, "/api/users/3/reservations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, app.reservations.limit)
}

func TestProperties(t *testing.T) {
	app := newTestApp(t, config.RateLimitConfig{})

	t.Run("list maps query filters", func(t *testing.T) {
		rec := app.do(http.MethodGet,
			"/api/properties?city=van&owner_id=2&minimum_price_per_night=50&maximum_price_per_night=150&minimum_rating=4&limit=5", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.PropertyFilters{
			City:                 "van",
			OwnerID:              2,
			MinimumPricePerNight: 50,
			MaximumPricePerNight: 150,
			MinimumRating:        4,
		}, app.properties.filters)
		assert.Equal(t, 5, app.properties.limit)
	})

	t.Run("large price ceiling reaches the store", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/properties?minimum_price_per_night=50&maximum_price_per_night=1e8", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1e8, app.properties.filters.MaximumPricePerNight)
	})

	t.Run("rating out of range", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/properties?minimum_rating=9", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create stores in memory", func(t *testing.T) {
		before := len(app.fixtures.Properties())

		rec := app.do(http.MethodPost, "/api/properties", `{"owner_id":1,"title":"Cabin","city":"Vancouver","cost_per_night":12000}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decode(t, rec)
		id := int64(body["id"].(float64))
		assert.Equal(t, int64(before+1), id)

		stored, ok := app.fixtures.Property(id)
		require.True(t, ok)
		assert.Equal(t, "Cabin", stored.Title)
	})

	t.Run("create rejects values beyond the column range", func(t *testing.T) {
		for _, body := range []string{
			`{"owner_id":3000000000,"title":"Cabin","city":"Vancouver"}`,
			`{"owner_id":1,"title":"Cabin","city":"Vancouver","cost_per_night":3000000000}`,
		} {
			rec := app.do(http.MethodPost, "/api/properties", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("create requires a title", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/api/properties", `{"owner_id":1,"city":"Vancouver"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, config.RateLimitConfig{})

	rec := app.do(http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(t, config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1})

	first := app.do(http.MethodGet, "/api/users/1", "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := app.do(http.MethodGet, "/api/users/1", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode(t, second)["code"])
}
