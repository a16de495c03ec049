package app

import (
	"mathquest_backend/docs"
	"mathquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 学生进阶引擎：调用方（BFF）已完成认证，这里只按标识符操作
		students := api.Group("/students/:id")
		{
			students.POST("/placement", c.progression.Place)
			students.GET("/progress", c.progression.GetProgress)
			students.POST("/attempts", c.progression.SubmitAttempt)

			students.GET("/skills", c.skill.GetSkills)

			students.GET("/points/history", c.points.History)

			students.GET("/badges", c.badge.ListEarned)
			students.POST("/badges/evaluate", c.badge.Evaluate)

			students.POST("/checkin", c.checkin.Checkin)
			students.GET("/checkin/streak", c.checkin.Stats)

			students.POST("/shop/items/:itemId/purchase", c.shop.Purchase)
			students.GET("/shop/purchases", c.shop.ListPurchases)
		}

		api.GET("/badges", c.badge.ListCatalog)
		api.GET("/shop/items", c.shop.ListItems)
		api.GET("/leaderboard/points", c.points.Leaderboard)

		// 管理端：目录维护与人工干预
		admin := api.Group("/admin")
		{
			admin.POST("/badges", c.badge.Create)
			admin.PUT("/badges/:id", c.badge.Update)
			admin.DELETE("/badges/:id", c.badge.Delete)
			admin.POST("/badges/icon", c.badge.UploadIcon)

			admin.GET("/shop/items", c.shop.ListAllItems)
			admin.POST("/shop/items", c.shop.CreateItem)
			admin.PUT("/shop/items/:id", c.shop.UpdateItem)
			admin.DELETE("/shop/items/:id", c.shop.DeleteItem)
			admin.POST("/shop/items/image", c.shop.UploadImage)

			admin.POST("/students/:id/points/grant", c.points.Grant)
			admin.POST("/students/:id/skills/award", c.skill.AwardPoints)
		}
	}
}
