package attendanceerrors

import (
	"net/http"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/apperror"
)

var (
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeConflict,
		"attendance already recorded for this employee and date",
		http.StatusConflict,
	)
)
