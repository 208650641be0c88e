package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle-manager-backend/internal/common/errors"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := newRouter()
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, errors.ErrCodeInternal, resp.Error.Code)
	assert.Empty(t, resp.Error.Stack)
	assert.NotEmpty(t, resp.RequestID)
}

func TestRequestID(t *testing.T) {
	r := newRouter()
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/id", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w = serve(r, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-42", w.Body.String())
}

func TestRespondError(t *testing.T) {
	r := newRouter()
	r.GET("/app", func(c *gin.Context) {
		RespondError(c, errors.NewNotFoundError("raffle", "r-1"))
	})
	r.GET("/plain", func(c *gin.Context) {
		RespondError(c, fmt.Errorf("disk on fire"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errors.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "/app", resp.Path)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errors.ErrCodeInternal, resp.Error.Code)
}

func TestNoRoute(t *testing.T) {
	r := newRouter()
	r.NoRoute(NoRoute())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errors.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "/api/v1/nope", resp.Error.Details["id"])
}

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeValidation, http.StatusBadRequest},
		{errors.ErrCodeBadRequest, http.StatusBadRequest},
		{errors.ErrCodeRaffleNotFound, http.StatusNotFound},
		{errors.ErrCodeTicketNotFound, http.StatusNotFound},
		{errors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{errors.ErrCodeForbidden, http.StatusForbidden},
		{errors.ErrCodeRaffleClosed, http.StatusConflict},
		{errors.ErrCodeTicketState, http.StatusConflict},
		{errors.ErrCodePrizeState, http.StatusConflict},
		{errors.ErrCodeStorageError, http.StatusServiceUnavailable},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatusCode(errors.New(tc.code, "x")))
		})
	}
}

type staticAuth struct {
	admin string
}

func (a staticAuth) Authenticate(bearer, initData string) (string, error) {
	if bearer == "good" || initData == "good" {
		return a.admin, nil
	}
	return "", errors.NewUnauthorizedError("bad credentials")
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter()
	r.GET("/open", RequireAdmin(nil), func(c *gin.Context) { c.String(http.StatusOK, GetAdmin(c)) })
	r.GET("/admin", RequireAdmin(staticAuth{admin: "root"}), func(c *gin.Context) {
		c.String(http.StatusOK, GetAdmin(c))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, LocalAdmin, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer good")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("init_data", "good")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAdmin(t *testing.T) {
	r := newRouter()
	r.GET("/open", OptionalAdmin(nil), func(c *gin.Context) { c.String(http.StatusOK, GetAdmin(c)) })
	r.GET("/public", OptionalAdmin(staticAuth{admin: "root"}), func(c *gin.Context) {
		c.String(http.StatusOK, "admin=%s", GetAdmin(c))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, LocalAdmin, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin=", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin=", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer good")
	w = serve(r, req)
	assert.Equal(t, "admin=root", w.Body.String())
}
