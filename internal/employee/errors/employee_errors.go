package employeeerrors

import (
	"net/http"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotPayrollEligible = apperror.New(
		apperror.CodeInvalidInput,
		"employee is not eligible for payroll",
		http.StatusBadRequest,
	)
)
