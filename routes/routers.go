package routes

import (
	"net/http"

	"qrattendance/config"
	"qrattendance/controllers"
	middlewares "qrattendance/middleware"
	"qrattendance/services"
	"qrattendance/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

type Dependencies struct {
	Auth         *services.AdminAuthenticator
	Registration *services.RegistrationService
	Attendance   *services.AttendanceService
	Melody       *melody.Melody
	Logger       logger.Logger
	SiteURL      string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authController := controllers.NewAuthController(deps.Auth, deps.Logger)
	userController := controllers.NewUserController(deps.Registration, deps.SiteURL)
	attendanceController := controllers.NewAttendanceController(deps.Attendance)

	router.Use(middlewares.RequestID(), middlewares.ErrorHandler(deps.Logger), middlewares.RequireLogin())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	router.GET("/login", authController.ShowLogin)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	router.GET("/", userController.Home)
	router.GET("/createnewuser", userController.ShowCreateUser)
	router.POST("/createnewuser", userController.CreateUser)

	router.GET("/log/:username", attendanceController.LogAttendance)

	if deps.Melody != nil {
		config.InitWebSocket(router, deps.Melody)
	}
}
