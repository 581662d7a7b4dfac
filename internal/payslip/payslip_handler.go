package payslip

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/apperror"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

type generateResponseBody struct {
	Message  string            `json:"message"`
	Payslips []PayslipResponse `json:"payslips"`
	Skipped  []string          `json:"skipped,omitempty"`
}

func (h *Handler) Generate(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req GeneratePayslipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	body := generateResponseBody{
		Message:  "Payslips generated successfully",
		Payslips: result.Generated,
		Skipped:  result.Skipped,
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(body); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.JSON(c, http.StatusOK, body)
}

func (h *Handler) GetByMonthYear(c *gin.Context) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")

	if monthStr == "" || yearStr == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Month and year are required", nil)
		return
	}

	month, monthErr := strconv.Atoi(monthStr)
	year, yearErr := strconv.Atoi(yearStr)
	if monthErr != nil || yearErr != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid month or year format", nil)
		return
	}

	payslips, err := h.service.GetByMonthYear(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, payslips)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	payslips, err := h.service.GetByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, payslips)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Payslip deleted successfully")
}
