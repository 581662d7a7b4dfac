package payslipreport

import (
	"net/http"
	"strconv"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/apperror"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Generate(c *gin.Context) {
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

	report, err := h.service.Generate(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message": "Payslip report generated successfully",
		"report":  report,
	})
}

func (h *Handler) GetByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Valid year is required", nil)
		return
	}

	reports, svcErr := h.service.GetByYear(c.Request.Context(), year)
	if svcErr != nil {
		h.writeServiceError(c, svcErr)
		return
	}

	response.JSON(c, http.StatusOK, reports)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Payslip Report deleted successfully")
}
