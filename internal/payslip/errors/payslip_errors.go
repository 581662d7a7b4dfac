package paysliperrors

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
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrNoRecipients = apperror.New(
		apperror.CodeInvalidInput,
		"At least one employee email is required",
		http.StatusBadRequest,
	)
	ErrInvalidBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"employee base salary must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrNotPayrollEligible = apperror.New(
		apperror.CodeInvalidInput,
		"only accounts with the employee role participate in payroll",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrDuplicatePayslip = apperror.New(
		apperror.CodeConflict,
		"a payslip already exists for this employee and period",
		http.StatusConflict,
	)
)
