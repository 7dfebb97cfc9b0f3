package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/apierror"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/config"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/infra"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infra.AutoMigrate(db))
	return db
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Activation ───────────────────────────────────────────────────────────────

type stubActivation struct {
	err   error
	calls []string
}

func (s *stubActivation) record(op string, id uint) error {
	s.calls = append(s.calls, fmt.Sprintf("%s:%d", op, id))
	return s.err
}

func (s *stubActivation) CascadeDeactivate(_ context.Context, id uint) error {
	return s.record("deactivate", id)
}
func (s *stubActivation) CascadeReactivate(_ context.Context, id uint) error {
	return s.record("reactivate", id)
}
func (s *stubActivation) CascadeDeactivateVendor(_ context.Context, id uint) error {
	return s.record("deactivate-vendor", id)
}
func (s *stubActivation) CascadeReactivateVendor(_ context.Context, id uint) error {
	return s.record("reactivate-vendor", id)
}

func activationRouter(svc service.ActivationService) *gin.Engine {
	h := NewActivationHandler(svc)
	r := gin.New()
	r.POST("/api/vendor-locations/:id/deactivate", h.DeactivateLocation)
	r.POST("/api/vendor-locations/:id/reactivate", h.ReactivateLocation)
	r.POST("/api/vendors/:id/deactivate", h.DeactivateVendor)
	return r
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) apierror.Result {
	t.Helper()
	var res apierror.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestActivation_Success(t *testing.T) {
	stub := &stubActivation{}
	r := activationRouter(stub)

	w := doJSON(r, http.MethodPost, "/api/vendor-locations/7/deactivate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/vendor-locations/7/reactivate", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/vendors/3/deactivate", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"deactivate:7", "reactivate:7", "deactivate-vendor:3"}, stub.calls)
}

func TestActivation_NotFound(t *testing.T) {
	r := activationRouter(&stubActivation{err: fmt.Errorf("vendor location 9 %w", service.ErrNotFound)})

	w := doJSON(r, http.MethodPost, "/api/vendor-locations/9/deactivate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	res := decodeResult(t, w)
	assert.False(t, res.Success)
	assert.Equal(t, "vendor location 9 not found", res.Error)
}

func TestActivation_WriteFailureHidesCause(t *testing.T) {
	cause := fmt.Errorf("%w: freight_routes: database is locked", service.ErrCascadeWriteFailed)
	r := activationRouter(&stubActivation{err: cause})

	w := doJSON(r, http.MethodPost, "/api/vendor-locations/9/reactivate", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	res := decodeResult(t, w)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "no changes were saved")
	assert.NotContains(t, res.Error, "locked")
}

func TestActivation_BadID(t *testing.T) {
	stub := &stubActivation{}
	r := activationRouter(stub)

	for _, id := range []string{"abc", "0", "-1"} {
		w := doJSON(r, http.MethodPost, "/api/vendor-locations/"+id+"/deactivate", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.False(t, decodeResult(t, w).Success)
	}
	assert.Empty(t, stub.calls)
}

// ── CRUD ─────────────────────────────────────────────────────────────────────

func vendorsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := newTestDB(t)
	r := gin.New()
	NewVendorsHandler(service.NewVendorService(repository.NewVendorRepository(db))).Register(r.Group("/api/vendors"))
	return r
}

func TestCRUD_VendorLifecycle(t *testing.T) {
	r := vendorsRouter(t)

	w := doJSON(r, http.MethodPost, "/api/vendors", dto.CreateVendorRequest{Name: "hill country stone"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.VendorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Hill Country Stone", created.Name)

	path := fmt.Sprintf("/api/vendors/%d", created.ID)

	w = doJSON(r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, path, map[string]any{"short_name": "hcs"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"short_name":"HCS"`)

	w = doJSON(r, http.MethodGet, "/api/vendors?active=all", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []dto.VendorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doJSON(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCRUD_ValidationAndConflict(t *testing.T) {
	r := vendorsRouter(t)

	w := doJSON(r, http.MethodPost, "/api/vendors", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"Name":"min"`)

	w = doJSON(r, http.MethodPost, "/api/vendors", map[string]any{"name": "Alpha", "vendor_type": "bakery"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/vendors", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	w = doJSON(r, http.MethodPost, "/api/vendors", map[string]any{"name": "Alpha"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/vendors", map[string]any{"name": "ALPHA"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodGet, "/api/vendors?active=maybe", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(r, http.MethodGet, "/api/vendors/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCRUD_DecimalValidation(t *testing.T) {
	db := newTestDB(t)
	r := gin.New()
	svc := service.NewVendorProductService(repository.NewVendorProductRepository(db), repository.NewVendorLocationRepository(db))
	NewVendorProductsHandler(svc).Register(r.Group("/api/vendor-products"))

	w := doJSON(r, http.MethodPost, "/api/vendor-products", map[string]any{
		"vendor_location_id": 1, "name": "Mulch", "price": "-3.00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"Price":"min"`)

	w = doJSON(r, http.MethodPost, "/api/vendor-products", map[string]any{
		"vendor_location_id": 404, "name": "Mulch", "price": "3.00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown parent is a bad request")
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func authRouter(t *testing.T, secure bool) (*gin.Engine, service.AuthService) {
	t.Helper()
	signer, err := session.NewSigner("handler-secret")
	require.NoError(t, err)
	svc, err := service.NewAuthService(&config.Config{EmployeePassword: "gravel"}, signer)
	require.NoError(t, err)
	h := NewAuthHandler(svc, secure)
	r := gin.New()
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	return r, svc
}

func authCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", session.CookieName)
	return nil
}

func TestLogin_JSONSetsCookie(t *testing.T) {
	r, svc := authRouter(t, false)

	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Password: "gravel"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	c := authCookie(t, w)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 86400, c.MaxAge)
	assert.Equal(t, "/", c.Path)
	// gin query-escapes cookie values; c.Cookie undoes it on the way in.
	token, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)
	assert.Equal(t, session.StatusValid, svc.Verify(token))
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	r, _ := authRouter(t, true)
	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Password: "gravel"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, authCookie(t, w).Secure)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := authRouter(t, false)

	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Password: "mulch"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())

	w = doJSON(r, http.MethodPost, "/login", dto.LoginRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogin_FormFlow(t *testing.T) {
	r, _ := authRouter(t, false)

	post := func(password string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(url.Values{"password": {password}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("wrong")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?error=1", w.Header().Get("Location"))

	w = post("gravel")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	token := authCookie(t, w).Value

	// A signed-in browser skips the form.
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLoginPage(t *testing.T) {
	r, _ := authRouter(t, false)

	w := doJSON(r, http.MethodGet, "/login", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `name="password"`)
	assert.NotContains(t, w.Body.String(), "Wrong password")

	w = doJSON(r, http.MethodGet, "/login?error=1", nil)
	assert.Contains(t, w.Body.String(), "Wrong password")
}

func TestLogout_ClearsCookie(t *testing.T) {
	r, _ := authRouter(t, false)

	w := doJSON(r, http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	c := authCookie(t, w)
	assert.Empty(t, c.Value)
	assert.True(t, c.HttpOnly)
}
