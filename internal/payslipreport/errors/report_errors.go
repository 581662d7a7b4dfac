package reporterrors

import (
	"net/http"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/apperror"
)

var (
	ErrMonthYearRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Month and year are required",
		http.StatusBadRequest,
	)
	ErrInvalidMonthYear = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month or year format",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Valid year is required",
		http.StatusBadRequest,
	)
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip Report not found",
		http.StatusNotFound,
	)
	ErrRosterUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"employee roster could not be loaded",
		http.StatusInternalServerError,
	)
	ErrPayslipLookupFailed = apperror.New(
		apperror.CodeInternalError,
		"payslips for the period could not be loaded",
		http.StatusInternalServerError,
	)
)
