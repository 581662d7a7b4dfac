package payslip

import (
	"github.com/Amrik-Bhadra/SalaryFlow/internal/employee"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes keeps the legacy admin endpoint names the dashboard client
// already calls.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(employee.RoleAdmin))
	{
		if redisClient != nil {
			admin.POST("/generatePayslips", middleware.Idempotency(redisClient), handler.Generate)
		} else {
			admin.POST("/generatePayslips", handler.Generate)
		}
		admin.GET("/getPaySlips", handler.GetByMonthYear)
		admin.GET("/getPaySlipsByEmployee/:employeeId", handler.GetByEmployee)
		admin.DELETE("/deletePayslip/:id", handler.Delete)
	}
}
