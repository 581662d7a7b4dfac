package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := `{"message":"Payslips generated successfully","payslips":[]}`
	mock.ExpectGet("idemp:/admin/generatePayslips::abc-123").SetVal(cached)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlerCalled := false
	r.POST("/admin/generatePayslips", middleware.Idempotency(rdb), func(c *gin.Context) {
		handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"message": "fresh"})
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/generatePayslips", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, cached, w.Body.String())
	assert.False(t, handlerCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyAcquiresLockAndRunsHandler(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	mock.ExpectGet("idemp:/admin/generatePayslips::abc-123").RedisNil()
	mock.ExpectSetNX("idemp:/admin/generatePayslips::abc-123:lock", "locked", 30*time.Second).SetVal(true)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/generatePayslips", middleware.Idempotency(rdb), func(c *gin.Context) {
		cacheKey := c.GetString("idempotency_cache_key")
		lockKey := c.GetString("idempotency_lock_key")
		assert.Equal(t, "idemp:/admin/generatePayslips::abc-123", cacheKey)
		assert.Equal(t, "idemp:/admin/generatePayslips::abc-123:lock", lockKey)
		c.JSON(http.StatusOK, gin.H{"message": "fresh"})
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/generatePayslips", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"fresh"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRejectsConcurrentDuplicate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	mock.ExpectGet("idemp:/admin/generatePayslips::abc-123").RedisNil()
	mock.ExpectSetNX("idemp:/admin/generatePayslips::abc-123:lock", "locked", 30*time.Second).SetVal(false)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlerCalled := false
	r.POST("/admin/generatePayslips", middleware.Idempotency(rdb), func(c *gin.Context) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/generatePayslips", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.False(t, handlerCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencySkipsRequestsWithoutKey(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/generatePayslips", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "fresh"})
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/generatePayslips", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
