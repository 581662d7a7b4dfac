package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// Employee is the payroll-facing projection of the roster. Account and
// profile management are owned by the employee-management service; payroll
// reads this table and never writes it.
type Employee struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"column:name"`
	Email       string    `gorm:"column:email;uniqueIndex;not null"`
	Role        string    `gorm:"column:role;type:varchar(20);not null;default:employee"`
	Designation string    `gorm:"column:designation"`
	WorkType    string    `gorm:"column:work_type;type:varchar(20)"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:active"`
	BaseSalary  float64   `gorm:"column:base_salary;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
