package payslipreport_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Amrik-Bhadra/SalaryFlow/internal/employee"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/messaging/kafka"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/payslip"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/payslipreport"
	reporterrors "github.com/Amrik-Bhadra/SalaryFlow/internal/payslipreport/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeReportRepository struct {
	withTxFn                func(tx *sql.Tx) payslipreport.Repository
	createFn                func(ctx context.Context, r *payslipreport.PayslipReport) error
	findByIDFn              func(ctx context.Context, id string) (*payslipreport.PayslipReport, error)
	findByReportDateRangeFn func(ctx context.Context, start, end time.Time) ([]payslipreport.PayslipReport, error)
	deleteFn                func(ctx context.Context, id string) error
}

func (f *fakeReportRepository) WithTx(tx *sql.Tx) payslipreport.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeReportRepository) Create(ctx context.Context, r *payslipreport.PayslipReport) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeReportRepository) FindByID(ctx context.Context, id string) (*payslipreport.PayslipReport, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportRepository) FindByReportDateRange(ctx context.Context, start, end time.Time) ([]payslipreport.PayslipReport, error) {
	if f.findByReportDateRangeFn != nil {
		return f.findByReportDateRangeFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeReportRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeEmployeeRepository struct {
	findAllActiveFn func(ctx context.Context) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}

type fakePayslipRepository struct {
	findByPaymentDateRangeFn func(ctx context.Context, start, end time.Time) ([]payslip.Payslip, error)
}

func (f *fakePayslipRepository) WithTx(tx *sql.Tx) payslip.Repository { return f }

func (f *fakePayslipRepository) Create(ctx context.Context, p *payslip.Payslip) error { return nil }

func (f *fakePayslipRepository) FindByID(ctx context.Context, id string) (*payslip.Payslip, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayslipRepository) FindByPaymentDateRange(ctx context.Context, start, end time.Time) ([]payslip.Payslip, error) {
	if f.findByPaymentDateRangeFn != nil {
		return f.findByPaymentDateRangeFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	return nil, nil
}

func (f *fakePayslipRepository) HasPayslipInRange(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return false, nil
}

func (f *fakePayslipRepository) Delete(ctx context.Context, id string) error { return nil }

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type reportServiceDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *fakeReportRepository
	employees *fakeEmployeeRepository
	payslips  *fakePayslipRepository
	outbox    *fakeOutboxRepository
}

func setupReportService(t *testing.T) (payslipreport.Service, *reportServiceDeps) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &reportServiceDeps{
		sqlMock:   sqlMock,
		repo:      &fakeReportRepository{},
		employees: &fakeEmployeeRepository{},
		payslips:  &fakePayslipRepository{},
		outbox:    &fakeOutboxRepository{},
	}

	svc := payslipreport.NewService(db, deps.repo, deps.employees, deps.payslips, deps.outbox)
	return svc, deps
}

func activeEmployee(name string) employee.Employee {
	return employee.Employee{
		ID:     uuid.New(),
		Name:   name,
		Role:   employee.RoleEmployee,
		Status: employee.StatusActive,
	}
}

func slipFor(emp employee.Employee, paymentDate time.Time, net float64) payslip.Payslip {
	return payslip.Payslip{
		ID:          uuid.New(),
		EmployeeID:  emp.ID,
		PaymentDate: paymentDate,
		NetSalary:   net,
	}
}

func TestGeneratePartitionsRosterIntoPaidAndUnpaid(t *testing.T) {
	svc, deps := setupReportService(t)

	paidEmp := activeEmployee("Asha Verma")
	unpaidEmp := activeEmployee("Rohan Iyer")
	payOn := time.Date(2023, time.February, 28, 10, 0, 0, 0, time.UTC)

	deps.employees.findAllActiveFn = func(ctx context.Context) ([]employee.Employee, error) {
		return []employee.Employee{paidEmp, unpaidEmp}, nil
	}
	deps.payslips.findByPaymentDateRangeFn = func(ctx context.Context, start, end time.Time) ([]payslip.Payslip, error) {
		return []payslip.Payslip{slipFor(paidEmp, payOn, 27846.43)}, nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	report, err := svc.Generate(context.Background(), 2, 2023)

	assert.NoError(t, err)
	assert.Equal(t, "PaySlip Report - February 2023", report.ReportTitle)
	assert.Len(t, report.PayedEmployees, 1)
	assert.Len(t, report.NotPayedEmployees, 1)
	assert.Equal(t, paidEmp.ID.String(), report.PayedEmployees[0].EmployeeID)
	assert.Equal(t, 27846.43, report.PayedEmployees[0].PayslipData.NetSalary)
	assert.Equal(t, unpaidEmp.ID.String(), report.NotPayedEmployees[0].EmployeeID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGenerateKeepsNewestPayslipWhenDuplicatesExist(t *testing.T) {
	svc, deps := setupReportService(t)

	emp := activeEmployee("Asha Verma")
	older := slipFor(emp, time.Date(2023, time.February, 10, 9, 0, 0, 0, time.UTC), 100)
	newer := slipFor(emp, time.Date(2023, time.February, 27, 9, 0, 0, 0, time.UTC), 200)

	deps.employees.findAllActiveFn = func(ctx context.Context) ([]employee.Employee, error) {
		return []employee.Employee{emp}, nil
	}
	// Repository contract: rows arrive newest first.
	deps.payslips.findByPaymentDateRangeFn = func(ctx context.Context, start, end time.Time) ([]payslip.Payslip, error) {
		return []payslip.Payslip{newer, older}, nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	report, err := svc.Generate(context.Background(), 2, 2023)

	assert.NoError(t, err)
	assert.Len(t, report.PayedEmployees, 1)
	assert.Equal(t, float64(200), report.PayedEmployees[0].PayslipData.NetSalary)
	assert.Empty(t, report.NotPayedEmployees)
}

func TestGenerateTwiceProducesTwoDistinctReports(t *testing.T) {
	svc, deps := setupReportService(t)

	var createdIDs []string
	deps.repo.createFn = func(ctx context.Context, r *payslipreport.PayslipReport) error {
		createdIDs = append(createdIDs, r.ID.String())
		return nil
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	first, err := svc.Generate(context.Background(), 2, 2023)
	assert.NoError(t, err)
	second, err := svc.Generate(context.Background(), 2, 2023)
	assert.NoError(t, err)

	assert.Len(t, createdIDs, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGenerateRejectsInvalidPeriodBeforeAnyQuery(t *testing.T) {
	svc, deps := setupReportService(t)

	queried := false
	deps.employees.findAllActiveFn = func(ctx context.Context) ([]employee.Employee, error) {
		queried = true
		return nil, nil
	}

	_, err := svc.Generate(context.Background(), 13, 2023)

	assert.ErrorIs(t, err, reporterrors.ErrInvalidMonthYear)
	assert.False(t, queried)
}

func TestGenerateMapsRosterFailure(t *testing.T) {
	svc, deps := setupReportService(t)

	deps.employees.findAllActiveFn = func(ctx context.Context) ([]employee.Employee, error) {
		return nil, assert.AnError
	}

	_, err := svc.Generate(context.Background(), 2, 2023)

	assert.ErrorIs(t, err, reporterrors.ErrRosterUnavailable)
}

func TestGenerateEmptyRosterYieldsEmptyLists(t *testing.T) {
	svc, deps := setupReportService(t)

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	report, err := svc.Generate(context.Background(), 6, 2025)

	assert.NoError(t, err)
	assert.NotNil(t, report.PayedEmployees)
	assert.Empty(t, report.PayedEmployees)
	assert.NotNil(t, report.NotPayedEmployees)
	assert.Empty(t, report.NotPayedEmployees)
}

func TestGetByYearRejectsNonPositiveYear(t *testing.T) {
	svc, _ := setupReportService(t)

	_, err := svc.GetByYear(context.Background(), 0)

	assert.ErrorIs(t, err, reporterrors.ErrInvalidYear)
}

func TestGetByYearQueriesWholeCalendarYear(t *testing.T) {
	svc, deps := setupReportService(t)

	var gotStart, gotEnd time.Time
	deps.repo.findByReportDateRangeFn = func(ctx context.Context, start, end time.Time) ([]payslipreport.PayslipReport, error) {
		gotStart, gotEnd = start, end
		return nil, nil
	}

	rows, err := svc.GetByYear(context.Background(), 2023)

	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestDeleteReturnsNotFoundForMissingReport(t *testing.T) {
	svc, deps := setupReportService(t)

	deps.repo.findByIDFn = func(ctx context.Context, id string) (*payslipreport.PayslipReport, error) {
		return nil, gorm.ErrRecordNotFound
	}

	err := svc.Delete(context.Background(), "4df2c6a8-9f0b-4f36-8f1c-2f4f4f1f9a10")

	assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)
}
