package payslip

import "time"

type GeneratePayslipsRequest struct {
	Month int      `json:"month" binding:"required,min=1,max=12"`
	Year  int      `json:"year" binding:"required,min=1"`
	Email []string `json:"email" binding:"required,min=1,dive,email"`
}

type PayslipResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name,omitempty"`
	Designation       string  `json:"designation,omitempty"`
	PaymentDate       string  `json:"payment_date"`
	BasicSalary       float64 `json:"basic_salary"`
	HRA               float64 `json:"hra"`
	Transport         float64 `json:"transport"`
	Medical           float64 `json:"medical"`
	Tax               float64 `json:"tax"`
	PF                float64 `json:"pf"`
	Insurance         float64 `json:"insurance"`
	NetSalary         float64 `json:"net_salary"`
	TotalWorkingHours float64 `json:"total_working_hours"`
}

// BatchResult is the outcome of one generation request. Lookup misses do not
// abort the batch; they are reported back in Skipped so the administrator can
// see which addresses never produced a payslip.
type BatchResult struct {
	Generated []PayslipResponse
	Skipped   []string
}

// ToResponse maps a stored payslip onto its wire shape. The report module
// uses the same shape for its embedded snapshots.
func ToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                p.ID.String(),
		EmployeeID:        p.EmployeeID.String(),
		PaymentDate:       p.PaymentDate.UTC().Format(time.RFC3339),
		BasicSalary:       p.BasicSalary,
		HRA:               p.HRA,
		Transport:         p.Transport,
		Medical:           p.Medical,
		Tax:               p.Tax,
		PF:                p.PF,
		Insurance:         p.Insurance,
		NetSalary:         p.NetSalary,
		TotalWorkingHours: p.TotalWorkingHours,
	}

	if p.Employee != nil {
		resp.EmployeeName = p.Employee.Name
		resp.Designation = p.Employee.Designation
	}

	return resp
}

func mapToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = ToResponse(p)
	}
	return resp
}
