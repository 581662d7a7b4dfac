package payslip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/attendance"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/employee"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/events"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/messaging/kafka"
	paysliperrors "github.com/Amrik-Bhadra/SalaryFlow/internal/payslip/errors"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayslipsRequest) (BatchResult, error)
	GetByMonthYear(ctx context.Context, month, year int) ([]PayslipResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db              *sql.DB
	repo            Repository
	employees       employee.Repository
	attendances     attendance.Repository
	outbox          kafka.OutboxRepository
	allowDuplicates bool
}

// NewService wires the payslip generator. allowDuplicates keeps the
// historical behavior of letting a second generation for the same employee
// and month insert a second row; when false such employees are skipped.
func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	attendances attendance.Repository,
	outbox kafka.OutboxRepository,
	allowDuplicates bool,
) Service {
	return &service{
		db:              db,
		repo:            repo,
		employees:       employees,
		attendances:     attendances,
		outbox:          outbox,
		allowDuplicates: allowDuplicates,
	}
}

// MonthBounds returns the first and last instants of a calendar month in UTC.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return start, end
}

// Generate produces one payslip per requested email for the given month.
// Employees are processed independently and in order; an unknown address or
// an ineligible employee is recorded in Skipped and the batch keeps going.
func (s *service) Generate(ctx context.Context, req GeneratePayslipsRequest) (BatchResult, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return BatchResult{}, paysliperrors.ErrInvalidMonthYear
	}
	if len(req.Email) == 0 {
		return BatchResult{}, paysliperrors.ErrNoRecipients
	}

	start, end := MonthBounds(req.Year, req.Month)
	result := BatchResult{Generated: make([]PayslipResponse, 0, len(req.Email))}

	for _, email := range req.Email {
		emp, err := s.employees.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Skipped = append(result.Skipped, email)
				continue
			}
			return BatchResult{}, err
		}

		if !s.allowDuplicates {
			exists, err := s.repo.HasPayslipInRange(ctx, emp.ID.String(), start, end)
			if err != nil {
				return BatchResult{}, err
			}
			if exists {
				zap.L().Warn("payslip already exists for period, skipping",
					zap.String("email", email),
					zap.Int("month", req.Month),
					zap.Int("year", req.Year),
				)
				result.Skipped = append(result.Skipped, email)
				continue
			}
		}

		records, err := s.attendances.FindByEmployeeAndDateRange(ctx, emp.ID.String(), start, end)
		if err != nil {
			return BatchResult{}, err
		}

		slip, err := Compute(emp, req.Year, req.Month, records, time.Now().UTC())
		if err != nil {
			zap.L().Warn("payslip computation rejected employee, skipping",
				zap.String("email", email),
				zap.Error(err),
			)
			result.Skipped = append(result.Skipped, email)
			continue
		}
		slip.ID = uuid.New()

		if err := s.insertWithEvent(ctx, &slip); err != nil {
			return BatchResult{}, err
		}

		resp := ToResponse(slip)
		resp.EmployeeName = emp.Name
		resp.Designation = emp.Designation
		result.Generated = append(result.Generated, resp)
	}

	return result, nil
}

// insertWithEvent commits the payslip row and its outbox event in one
// transaction so the event is never published for a row that failed.
func (s *service) insertWithEvent(ctx context.Context, slip *Payslip) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, slip); err != nil {
		return err
	}

	payload, err := json.Marshal(events.PayslipGeneratedEvent{
		EventType:   "payroll.payslip.generated",
		PayslipID:   slip.ID.String(),
		EmployeeID:  slip.EmployeeID.String(),
		PaymentDate: slip.PaymentDate,
		NetSalary:   slip.NetSalary,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payslip",
		AggregateID:   slip.ID.String(),
		EventType:     "payroll.payslip.generated",
		Topic:         events.PayslipGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetByMonthYear(ctx context.Context, month, year int) ([]PayslipResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, paysliperrors.ErrInvalidMonthYear
	}

	start, end := MonthBounds(year, month)
	rows, err := s.repo.FindByPaymentDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, paysliperrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

// Delete removes a payslip row. Reports that snapshotted it keep their copy;
// the snapshot is a historical record, not a live join.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return paysliperrors.ErrPayslipNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
