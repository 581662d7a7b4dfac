package events

import "time"

const PayslipReportGeneratedTopic = "hr.payroll.report.generated.v1"

type PayslipReportGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	ReportID    string    `json:"report_id"`
	ReportTitle string    `json:"report_title"`
	PaidCount   int       `json:"paid_count"`
	UnpaidCount int       `json:"unpaid_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}
