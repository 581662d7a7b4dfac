package payslipreport

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/payslip"

	"github.com/google/uuid"
)

// PayslipReport is a point-in-time reconciliation snapshot for one reporting
// month. The embedded payslip data is a deliberate denormalized copy: the
// report must keep showing what was true when it was generated, even after
// the underlying payslip is deleted.
type PayslipReport struct {
	ID                uuid.UUID          `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportDate        time.Time          `gorm:"column:report_date;type:timestamptz;not null;index"`
	ReportTitle       string             `gorm:"column:report_title;not null"`
	PayedEmployees    PaidEmployeeList   `gorm:"column:payed_employees;type:jsonb"`
	NotPayedEmployees UnpaidEmployeeList `gorm:"column:not_payed_employees;type:jsonb"`
	CreatedAt         time.Time          `gorm:"column:created_at"`
	UpdatedAt         time.Time          `gorm:"column:updated_at"`
}

func (PayslipReport) TableName() string {
	return "payslip_reports"
}

type PaidEmployee struct {
	EmployeeID  string                  `json:"employee_id"`
	Name        string                  `json:"name"`
	PayslipData payslip.PayslipResponse `json:"payslip_data"`
}

type UnpaidEmployee struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}

type PaidEmployeeList []PaidEmployee

func (l PaidEmployeeList) Value() (driver.Value, error) {
	if l == nil {
		l = PaidEmployeeList{}
	}
	return json.Marshal(l)
}

func (l *PaidEmployeeList) Scan(value any) error {
	return scanJSONList(value, l)
}

type UnpaidEmployeeList []UnpaidEmployee

func (l UnpaidEmployeeList) Value() (driver.Value, error) {
	if l == nil {
		l = UnpaidEmployeeList{}
	}
	return json.Marshal(l)
}

func (l *UnpaidEmployeeList) Scan(value any) error {
	return scanJSONList(value, l)
}

func scanJSONList(value any, dest any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
