package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "github.com/Sakibh04/Job-Application-Tracker/internal/app"
	"github.com/Sakibh04/Job-Application-Tracker/internal/bootstrap"
	"github.com/Sakibh04/Job-Application-Tracker/internal/repository"
	"github.com/Sakibh04/Job-Application-Tracker/internal/session"
	"github.com/Sakibh04/Job-Application-Tracker/internal/transport/http/handler"
	"github.com/Sakibh04/Job-Application-Tracker/internal/transport/http/middleware"
	"github.com/Sakibh04/Job-Application-Tracker/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.Error(c, 500, "Internal server error")
	}))
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, 404, "Not found")
	})

	sessions := session.NewManager(
		app.Redis,
		app.Config.Auth.SessionSecret,
		time.Duration(app.Config.Auth.SessionTTLMinute)*time.Minute,
	)

	userRepo := repository.NewUserRepository(app.DB)
	jobRepo := repository.NewJobRepository(app.DB)
	authService := appsvc.NewAuthService(userRepo)
	jobService := appsvc.NewJobService(jobRepo)

	pageHandler := handler.NewPageHandler(sessions)
	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService, sessions)
	jobHandler := handler.NewJobHandler(jobService)

	router.GET("/", pageHandler.Landing)
	router.GET("/dashboard", pageHandler.Dashboard)
	router.GET("/healthz", healthHandler.Check)

	api := router.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	authed := api.Group("")
	authed.Use(middleware.Auth(sessions))
	authed.GET("/jobs", jobHandler.List)
	authed.POST("/jobs", jobHandler.Create)
	authed.PUT("/jobs/:id", jobHandler.Update)
	authed.DELETE("/jobs/:id", jobHandler.Delete)
	authed.GET("/stats", jobHandler.Stats)
	authed.GET("/export/csv", jobHandler.ExportCSV)

	return router
}
