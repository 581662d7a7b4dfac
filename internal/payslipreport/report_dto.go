package payslipreport

import "time"

type PayslipReportResponse struct {
	ID                string             `json:"id"`
	ReportDate        string             `json:"report_date"`
	ReportTitle       string             `json:"report_title"`
	PayedEmployees    []PaidEmployee     `json:"payed_employees"`
	NotPayedEmployees []UnpaidEmployee   `json:"not_payed_employees"`
}

func mapToResponse(r PayslipReport) PayslipReportResponse {
	paid := r.PayedEmployees
	if paid == nil {
		paid = PaidEmployeeList{}
	}
	unpaid := r.NotPayedEmployees
	if unpaid == nil {
		unpaid = UnpaidEmployeeList{}
	}

	return PayslipReportResponse{
		ID:                r.ID.String(),
		ReportDate:        r.ReportDate.UTC().Format(time.RFC3339),
		ReportTitle:       r.ReportTitle,
		PayedEmployees:    paid,
		NotPayedEmployees: unpaid,
	}
}

func mapToListResponse(reports []PayslipReport) []PayslipReportResponse {
	resp := make([]PayslipReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = mapToResponse(r)
	}
	return resp
}
