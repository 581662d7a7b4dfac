package payslip

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByPaymentDateRange(ctx context.Context, start, end time.Time) ([]Payslip, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	HasPayslipInRange(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

const insertPayslipQuery = `
INSERT INTO payslips (
	id, employee_id, payment_date,
	basic_salary, hra, transport, medical,
	tax, pf, insurance, net_salary,
	total_working_hours, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
`

// Create inserts through the enclosing transaction when one is attached so
// the payslip row and its outbox event commit together.
func (r *repository) Create(ctx context.Context, p *Payslip) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(
			ctx, insertPayslipQuery,
			p.ID, p.EmployeeID, p.PaymentDate,
			p.BasicSalary, p.HRA, p.Transport, p.Medical,
			p.Tax, p.PF, p.Insurance, p.NetSalary,
			p.TotalWorkingHours,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByPaymentDateRange(ctx context.Context, start, end time.Time) ([]Payslip, error) {
	var rows []Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("payment_date >= ?", start).
		Where("payment_date <= ?", end).
		Order("payment_date DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var rows []Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("payment_date DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) HasPayslipInRange(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("employee_id = ?", employeeID).
		Where("payment_date >= ?", start).
		Where("payment_date <= ?", end).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Payslip{}, "id = ?", id).Error
}
