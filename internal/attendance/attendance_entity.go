package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusOnLeave = "on-leave"
	StatusHalfDay = "half-day"
)

// Attendance holds one employee's facts for one calendar day. Capture
// (check-in, geolocation, selfie verification) is owned by the attendance
// service; payroll reads these rows and never edits them.
type Attendance struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date         time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`
	Status       string    `gorm:"column:status;type:varchar(20);not null;default:absent;index"`
	CheckInTime  string    `gorm:"column:check_in_time"`
	CheckOutTime string    `gorm:"column:check_out_time"`
	TotalHours   float64   `gorm:"column:total_hours;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
