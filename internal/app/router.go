package app

import (
	"event_passport_backend/docs"
	"event_passport_backend/internal/config"
	"event_passport_backend/internal/graph"
	"event_passport_backend/internal/middleware"
	"event_passport_backend/internal/util"
	"event_passport_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/", c.health.Index)

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	adminOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(s.auth),
		middleware.RoleMiddleware(util.RoleAdmin),
	}

	// 1. 认证
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.auth.Login)
		auth.POST("/logout", append(adminOnly, c.auth.Logout)...)
		auth.GET("/me", append(adminOnly, c.auth.Me)...)
	}

	// 2. 展位：扫码相关接口公开，目录管理需要管理员
	// :id 在 /:id/qr 与 /:id/poster 中表示扫码令牌，gin 要求同一位置的参数名一致
	booths := api.Group("/booths")
	{
		booths.GET("", c.booth.ListBooths)
		booths.GET("/qr/:token", c.booth.GetBoothByQRCode)
		booths.GET("/:id/qr", c.booth.GetQRCode)

		booths.POST("", append(adminOnly, c.booth.CreateBooth)...)
		booths.GET("/:id", append(adminOnly, c.booth.GetBooth)...)
		booths.PUT("/:id", append(adminOnly, c.booth.UpdateBooth)...)
		booths.DELETE("/:id", append(adminOnly, c.booth.DeleteBooth)...)
		booths.GET("/:id/poster", append(adminOnly, c.booth.GetPoster)...)
	}

	// 3. 参会者
	attendees := api.Group("/attendees")
	{
		attendees.POST("", c.attendee.CreateAttendee)
		attendees.GET("/email/:email", c.attendee.GetByEmail)
		attendees.GET("/:id/visits", c.attendee.GetVisits)
		attendees.GET("/:id/stats", c.attendee.GetStats)

		attendees.GET("", append(adminOnly, c.attendee.ListAttendees)...)
	}

	// 4. 访问
	visits := api.Group("/visits")
	{
		visits.POST("/checkin", c.visit.Checkin)
		visits.POST("/:id/rate", c.visit.Rate)
		visits.GET("/attendee/:attendeeId", c.visit.ListAttendeeVisits)

		visits.GET("", append(adminOnly, c.visit.ListVisits)...)
		visits.GET("/stats", append(adminOnly, c.visit.GetStats)...)
	}

	// 5. 管理后台 GraphQL（只读）
	api.POST("/graphql", append(adminOnly, gin.WrapH(graph.NewHandler(s.stats, s.booth)))...)
}
