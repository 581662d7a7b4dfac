package attendance

import (
	"context"
	"errors"
	"time"

	attendanceerrors "github.com/Amrik-Bhadra/SalaryFlow/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	err := r.db.WithContext(ctx).Create(a).Error
	return mapRepositoryError(err)
}

// FindByEmployeeAndDateRange is the read contract payroll depends on: all
// rows for one employee with date in [start, end] inclusive.
func (r *repository) FindByEmployeeAndDateRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date >= ?", start.Format("2006-01-02")).
		Where("date <= ?", end.Format("2006-01-02")).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrDuplicateAttendance
	}

	return err
}
