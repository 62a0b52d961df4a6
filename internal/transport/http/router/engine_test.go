package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shuttle-checkin/internal/core/auth"
	"shuttle-checkin/internal/core/session"
	"shuttle-checkin/internal/repo"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/handler"
	"shuttle-checkin/pkg/utils"
)

type client struct {
	t *testing.T
	h http.Handler
}

func newClient(t *testing.T) client {
	t.Helper()
	hasher := utils.Hasher{N: 16, R: 1, P: 1, KeyLen: 32, SaltLen: 8}
	store := repo.NewStore(nil)
	cred, err := hasher.Hash("admin123")
	require.NoError(t, err)
	repo.Seed(store, repo.SeedOptions{AdminEmail: "admin@shuttle.local", AdminCredential: cred})

	svc := service.New(service.Deps{
		Users:          store.Users(),
		Vacations:      store.Vacations(),
		Checkins:       store.Checkins(),
		SingleTrips:    store.SingleTrips(),
		Locations:      store.Locations(),
		DepartureTimes: store.DepartureTimes(),
		Contracts:      store.Contracts(),
		Credentials:    hasher,
		Tokens:         &auth.JWTer{Secret: []byte("test"), Issuer: "test", TTL: time.Hour},
		Sessions:       session.NewMemory(),
	})
	r := NewEngine(zap.NewNop(), svc, Options{
		Mode:          gin.TestMode,
		AuthRateLimit: 1000,
		AuthRateBurst: 1000,
		Cookie:        handler.Cookie{Name: "sid"},
	})
	return client{t: t, h: r}
}

func (c client) do(method, path, token, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)
	return w
}

func (c client) login(email, password string) string {
	c.t.Helper()
	w := c.do(http.MethodPost, "/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

type errBody struct {
	Error string `json:"error"`
}

func TestHealthAndMetrics(t *testing.T) {
	c := newClient(t)
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/health", "", "").Code)
	w := c.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shuttle_http_requests_total")
}

func TestRegisterLoginLogout(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/register", "", `{"email":"x@y.com","password":"segredo1","name":"X"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "segredo1")
	assert.NotEmpty(t, w.Result().Cookies())

	w = c.do(http.MethodPost, "/api/register", "", `{"email":"x@y.com","password":"segredo2","name":"Y"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "E-mail já cadastrado", decode[errBody](t, w).Error)

	w = c.do(http.MethodPost, "/register", "", `{"email":"bad","password":"x","name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	tok := c.login("x@y.com", "segredo1")
	w = c.do(http.MethodGet, "/user", tok, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "x@y.com", decode[map[string]any](t, w)["email"])

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodPost, "/logout", tok, "").Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/user", tok, "").Code)

	w = c.do(http.MethodPost, "/login", "", `{"email":"x@y.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "E-mail ou senha inválidos", decode[errBody](t, w).Error)
}

func TestVacationBlocksCheckin(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodPost, "/register", "", `{"email":"a@x.com","password":"segredo1","name":"A"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	tok := c.login("a@x.com", "segredo1")

	w = c.do(http.MethodPost, "/vacations", tok, `{"startDate":"2024-06-01","endDate":"2024-06-10"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.do(http.MethodPost, "/checkins", tok, `{"date":"2024-06-05","direction":"outbound"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Você está de férias nesta data", decode[errBody](t, w).Error)

	w = c.do(http.MethodPost, "/checkins", tok, `{"date":"2024-06-11","direction":"outbound"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = c.do(http.MethodPost, "/checkins", tok, `{"date":"2024-06-11","direction":"outbound"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/vacations", tok, `{"startDate":"2024-06-10","endDate":"2024-06-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/checkins", tok, "")
	assert.Len(t, decode[[]map[string]any](t, w), 1)
}

func TestSingleTripFlow(t *testing.T) {
	c := newClient(t)
	admin := c.login("admin@shuttle.local", "admin123")

	w := c.do(http.MethodPost, "/admin/single-trips", admin,
		`{"user":{"name":"B","email":"b@x.com","cpf":"123"},"date":"2024-07-01","direction":"return","returnTime":"17h10"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	issued := decode[map[string]any](t, w)
	assert.NotEmpty(t, issued["plainPassword"])
	id := int64(issued["id"].(float64))
	path := "/api/single-trips/" + itoa(id)

	w = c.do(http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	preview := decode[map[string]any](t, w)
	assert.Equal(t, "b@x.com", preview["user"].(map[string]any)["email"])

	w = c.do(http.MethodPost, path+"/checkin", "", `{"date":"2024-07-01","direction":"return","returnTime":"18h10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := `{"date":"2024-07-01","direction":"return","returnTime":"17h10"}`
	w = c.do(http.MethodPost, path+"/checkin", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.do(http.MethodPost, path+"/checkin", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Viagem já utilizada", decode[errBody](t, w).Error)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, path, "", "").Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodDelete, "/admin/single-trips/"+itoa(id), admin, "").Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/single-trips/999", "", "").Code)
}

func TestAdminGate(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodPost, "/register", "", `{"email":"a@x.com","password":"segredo1","name":"A"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	tok := c.login("a@x.com", "segredo1")

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/admin/users", "", "").Code)
	assert.Equal(t, http.StatusForbidden, c.do(http.MethodGet, "/admin/users", tok, "").Code)
	assert.Equal(t, http.StatusForbidden, c.do(http.MethodGet, "/api/admin/checkins", tok, "").Code)
}

func TestAdminUserLifecycle(t *testing.T) {
	c := newClient(t)
	admin := c.login("admin@shuttle.local", "admin123")

	w := c.do(http.MethodPost, "/admin/users", admin, `{"email":"c@x.com","name":"Carla"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	id := itoa(int64(created["id"].(float64)))
	assert.NotEmpty(t, created["plainPassword"])
	assert.NotContains(t, created, "password")

	w = c.do(http.MethodPost, "/admin/users/"+id+"/reset-password", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	plain := decode[map[string]any](t, w)["plainPassword"].(string)
	c.login("c@x.com", plain)

	w = c.do(http.MethodGet, "/admin/users/search?q=carla", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = c.do(http.MethodPost, "/admin/users/"+id+"/contract", admin,
		`{"monday":true,"departureLocation":"Terminal Central","arrivalLocation":"Campus Principal","returnTime":"17h10"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = c.do(http.MethodPost, "/admin/contracts", admin,
		`{"userId":`+id+`,"departureLocation":"Terminal Central","arrivalLocation":"Campus Principal","returnTime":"17h10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Usuário já possui contrato", decode[errBody](t, w).Error)

	w = c.do(http.MethodDelete, "/admin/users/"+id, admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode[map[string]any](t, w)["active"])

	w = c.do(http.MethodDelete, "/admin/users/1", admin, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/admin/users/abc", admin, "").Code)
}

func TestCatalogRoutes(t *testing.T) {
	c := newClient(t)
	admin := c.login("admin@shuttle.local", "admin123")

	w := c.do(http.MethodGet, "/departure-times", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 2)

	w = c.do(http.MethodPatch, "/admin/departure-times/1", admin, `{"active":false}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[[]map[string]any](t, c.do(http.MethodGet, "/departure-times", "", "")), 1)

	w = c.do(http.MethodPost, "/admin/locations", admin, `{"name":"Bloco A","type":"arrival"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = c.do(http.MethodPost, "/admin/locations", admin, `{"name":"Bloco C","type":"somewhere"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/locations?type=departure", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 5)
}
