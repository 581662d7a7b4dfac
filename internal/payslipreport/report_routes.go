package payslipreport

import (
	"github.com/Amrik-Bhadra/SalaryFlow/internal/employee"
	"github.com/Amrik-Bhadra/SalaryFlow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

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
			admin.POST("/generatePayslipReport", middleware.Idempotency(redisClient), handler.Generate)
		} else {
			admin.POST("/generatePayslipReport", handler.Generate)
		}
		admin.GET("/getPaySlipReportsByYear", handler.GetByYear)
		admin.DELETE("/deletePayslipReport/:id", handler.Delete)
	}
}
