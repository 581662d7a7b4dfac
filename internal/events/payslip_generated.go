package events

import "time"

const PayslipGeneratedTopic = "hr.payroll.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PayslipID   string    `json:"payslip_id"`
	EmployeeID  string    `json:"employee_id"`
	PaymentDate time.Time `json:"payment_date"`
	NetSalary   float64   `json:"net_salary"`
	OccurredAt  time.Time `json:"occurred_at"`
}
