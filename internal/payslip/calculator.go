package payslip

import (
	"math"
	"time"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/attendance"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/employee"
	paysliperrors "github.com/Amrik-Bhadra/SalaryFlow/internal/payslip/errors"
)

// Allowance and deduction rates, fixed percentages of the derived basic salary.
const (
	hraRate       = 0.20
	transportRate = 0.10
	medicalRate   = 0.10
	taxRate       = 0.10
	pfRate        = 0.12
	insuranceRate = 0.05
)

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compute derives one payslip from an employee's attendance facts for one
// calendar month. records must be the employee's rows with date inside that
// month; an empty slice yields an all-zero payslip, which is a valid outcome,
// not an error.
//
// Half-days are counted once in presentDays and again at half weight, so a
// half-day pays out 1.5 day-rates. Changing this changes payout amounts; do
// not "fix" it without a product decision.
func Compute(emp *employee.Employee, year, month int, records []attendance.Attendance, paymentDate time.Time) (Payslip, error) {
	if emp.Role != employee.RoleEmployee {
		return Payslip{}, paysliperrors.ErrNotPayrollEligible
	}
	if emp.BaseSalary < 0 {
		return Payslip{}, paysliperrors.ErrInvalidBaseSalary
	}
	if month < 1 || month > 12 || year < 1 {
		return Payslip{}, paysliperrors.ErrInvalidMonthYear
	}

	presentDays := 0
	halfDays := 0
	totalHours := 0.0
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			presentDays++
		case attendance.StatusHalfDay:
			presentDays++
			halfDays++
		}
		totalHours += rec.TotalHours
	}

	effectivePresentDays := float64(presentDays) + 0.5*float64(halfDays)

	perDaySalary := emp.BaseSalary / float64(daysInMonth(year, month))
	basic := perDaySalary * effectivePresentDays

	hra := basic * hraRate
	transport := basic * transportRate
	medical := basic * medicalRate
	tax := basic * taxRate
	pf := basic * pfRate
	insurance := basic * insuranceRate

	// Net is derived from the unrounded components; every monetary field is
	// then rounded to two decimals independently, matching what payslips in
	// the wild already show.
	net := basic + hra + transport + medical - tax - pf - insurance

	return Payslip{
		EmployeeID:        emp.ID,
		PaymentDate:       paymentDate,
		BasicSalary:       round2(basic),
		HRA:               round2(hra),
		Transport:         round2(transport),
		Medical:           round2(medical),
		Tax:               round2(tax),
		PF:                round2(pf),
		Insurance:         round2(insurance),
		NetSalary:         round2(net),
		TotalWorkingHours: totalHours,
	}, nil
}
