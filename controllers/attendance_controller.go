package controllers

import (
	"qrattendance/response"
	"qrattendance/services"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	attendance *services.AttendanceService
}

func NewAttendanceController(attendance *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendance: attendance}
}

// LogAttendance answers 200 for every outcome; only store failures error.
func (ac *AttendanceController) LogAttendance(c *gin.Context) {
	result, err := ac.attendance.Log(c.Request.Context(), c.Param("username"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Message(c, result.Title(), result.Message(), result.Category(), gin.H{
		"suggestions": result.Suggestions,
	})
}
