package payslip

import (
	"time"

	"github.com/google/uuid"
)

// Payslip is one computed pay record for one employee, tied to a generation
// event via PaymentDate. Rows are insert-only: regeneration creates a new row
// and the only mutation is an explicit admin delete.
type Payslip struct {
	ID                uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID        uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;index"`
	Employee          *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	PaymentDate       time.Time    `gorm:"column:payment_date;type:timestamptz;not null;index"`
	BasicSalary       float64      `gorm:"column:basic_salary;not null"`
	HRA               float64      `gorm:"column:hra;not null"`
	Transport         float64      `gorm:"column:transport;not null"`
	Medical           float64      `gorm:"column:medical;not null"`
	Tax               float64      `gorm:"column:tax;not null"`
	PF                float64      `gorm:"column:pf;not null"`
	Insurance         float64      `gorm:"column:insurance;not null"`
	NetSalary         float64      `gorm:"column:net_salary;not null"`
	TotalWorkingHours float64      `gorm:"column:total_working_hours;not null;default:0"`
	CreatedAt         time.Time    `gorm:"column:created_at"`
	UpdatedAt         time.Time    `gorm:"column:updated_at"`
}

func (Payslip) TableName() string {
	return "payslips"
}

// EmployeeRef carries just the columns the payslip listing joins in.
type EmployeeRef struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name"`
	Designation string    `gorm:"column:designation"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
