package payslipreport

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *PayslipReport) error
	FindByID(ctx context.Context, id string) (*PayslipReport, error)
	FindByReportDateRange(ctx context.Context, start, end time.Time) ([]PayslipReport, error)
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

const insertReportQuery = `
INSERT INTO payslip_reports (
	id, report_date, report_title,
	payed_employees, not_payed_employees,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
`

// Create inserts through the enclosing transaction when one is attached so
// the snapshot and its outbox event commit together.
func (r *repository) Create(ctx context.Context, report *PayslipReport) error {
	if r.tx != nil {
		paid, err := json.Marshal(report.PayedEmployees)
		if err != nil {
			return err
		}
		unpaid, err := json.Marshal(report.NotPayedEmployees)
		if err != nil {
			return err
		}
		_, err = r.tx.ExecContext(
			ctx, insertReportQuery,
			report.ID, report.ReportDate, report.ReportTitle,
			paid, unpaid,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayslipReport, error) {
	var report PayslipReport
	err := r.db.WithContext(ctx).
		First(&report, "id = ?", id).Error
	return &report, err
}

func (r *repository) FindByReportDateRange(ctx context.Context, start, end time.Time) ([]PayslipReport, error) {
	var rows []PayslipReport
	err := r.db.WithContext(ctx).
		Where("report_date >= ?", start).
		Where("report_date < ?", end).
		Order("report_date DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&PayslipReport{}, "id = ?", id).Error
}
