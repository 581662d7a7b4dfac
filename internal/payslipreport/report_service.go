package payslipreport

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/employee"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/events"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/messaging/kafka"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/payslip"
	reporterrors "github.com/Amrik-Bhadra/SalaryFlow/internal/payslipreport/errors"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, month, year int) (PayslipReportResponse, error)
	GetByYear(ctx context.Context, year int) ([]PayslipReportResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	payslips  payslip.Repository
	outbox    kafka.OutboxRepository
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	payslips payslip.Repository,
	outbox kafka.OutboxRepository,
) Service {
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		payslips:  payslips,
		outbox:    outbox,
	}
}

// Generate reconciles the active roster against the payslips generated in
// the given month and persists the result as an immutable snapshot. Each
// call produces a new report row; two calls for the same period are two
// separate audit snapshots.
//
// The roster is evaluated at call time, not retroactively for the reported
// month. A report for last March lists the employees who are active today.
func (s *service) Generate(ctx context.Context, month, year int) (PayslipReportResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return PayslipReportResponse{}, reporterrors.ErrInvalidMonthYear
	}

	start, end := payslip.MonthBounds(year, month)

	roster, err := s.employees.FindAllActive(ctx)
	if err != nil {
		zap.L().Error("report roster fetch failed", zap.Error(err))
		return PayslipReportResponse{}, reporterrors.ErrRosterUnavailable
	}

	slips, err := s.payslips.FindByPaymentDateRange(ctx, start, end)
	if err != nil {
		zap.L().Error("report payslip fetch failed", zap.Error(err))
		return PayslipReportResponse{}, reporterrors.ErrPayslipLookupFailed
	}

	// Rows come back ordered payment_date DESC, id ASC, so keeping the first
	// occurrence per employee picks the newest payslip deterministically when
	// duplicates exist for the period.
	lookup := make(map[uuid.UUID]payslip.Payslip, len(slips))
	for _, slip := range slips {
		if _, seen := lookup[slip.EmployeeID]; !seen {
			lookup[slip.EmployeeID] = slip
		}
	}

	paid := make(PaidEmployeeList, 0, len(roster))
	unpaid := make(UnpaidEmployeeList, 0, len(roster))
	for _, emp := range roster {
		slip, ok := lookup[emp.ID]
		if !ok {
			unpaid = append(unpaid, UnpaidEmployee{
				EmployeeID: emp.ID.String(),
				Name:       emp.Name,
			})
			continue
		}
		paid = append(paid, PaidEmployee{
			EmployeeID:  emp.ID.String(),
			Name:        emp.Name,
			PayslipData: payslip.ToResponse(slip),
		})
	}

	report := &PayslipReport{
		ID:                uuid.New(),
		ReportDate:        time.Now().UTC(),
		ReportTitle:       fmt.Sprintf("PaySlip Report - %s %d", start.Month(), year),
		PayedEmployees:    paid,
		NotPayedEmployees: unpaid,
	}

	if err := s.insertWithEvent(ctx, report); err != nil {
		return PayslipReportResponse{}, err
	}

	return mapToResponse(*report), nil
}

func (s *service) insertWithEvent(ctx context.Context, report *PayslipReport) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, report); err != nil {
		return err
	}

	payload, err := json.Marshal(events.PayslipReportGeneratedEvent{
		EventType:   "payroll.report.generated",
		ReportID:    report.ID.String(),
		ReportTitle: report.ReportTitle,
		PaidCount:   len(report.PayedEmployees),
		UnpaidCount: len(report.NotPayedEmployees),
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payslip_report",
		AggregateID:   report.ID.String(),
		EventType:     "payroll.report.generated",
		Topic:         events.PayslipReportGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetByYear(ctx context.Context, year int) ([]PayslipReportResponse, error) {
	if year < 1 {
		return nil, reporterrors.ErrInvalidYear
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	rows, err := s.repo.FindByReportDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reporterrors.ErrReportNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
