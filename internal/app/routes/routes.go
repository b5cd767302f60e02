package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/controllers"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", middleware.BindJSON[dto.StudentRequest](), ctrl.Students.CreateStudent)
		students.GET("", ctrl.Students.GetAllStudents)
		// registered before /:id so "export" is never taken for an id
		students.GET("/export", ctrl.Students.ExportStudents)
		students.GET("/:id", ctrl.Students.GetStudentByID)
		students.PUT("/:id", middleware.BindJSON[dto.StudentRequest](), ctrl.Students.UpdateStudent)
		students.DELETE("/:id", ctrl.Students.DeleteStudent)
	}

	companies := v1.Group("/companies")
	{
		companies.POST("", middleware.BindJSON[dto.CompanyRequest](), ctrl.Companies.CreateCompany)
		companies.GET("", ctrl.Companies.GetAllCompanies)
		companies.GET("/:id", ctrl.Companies.GetCompanyByID)
		companies.PUT("/:id", middleware.BindJSON[dto.CompanyRequest](), ctrl.Companies.UpdateCompany)
		companies.DELETE("/:id", ctrl.Companies.DeleteCompany)
	}

	drives := v1.Group("/drives")
	{
		drives.POST("", middleware.BindJSON[dto.DriveRequest](), ctrl.Drives.CreateDrive)
		drives.GET("", ctrl.Drives.GetAllDrives)
		drives.GET("/:id", ctrl.Drives.GetDriveByID)
		drives.PUT("/:id", middleware.BindJSON[dto.DriveRequest](), ctrl.Drives.UpdateDrive)
		drives.DELETE("/:id", ctrl.Drives.DeleteDrive)
		drives.PUT("/:id/status", middleware.BindJSON[dto.UpdateDriveStatusRequest](), ctrl.Drives.UpdateDriveStatus)
	}

	applications := v1.Group("/applications")
	{
		applications.POST("", middleware.BindJSON[dto.CreateApplicationRequest](), ctrl.Applications.CreateApplication)
		applications.GET("", ctrl.Applications.GetAllApplications)
		applications.GET("/:id", ctrl.Applications.GetApplicationByID)
		applications.DELETE("/:id", ctrl.Applications.DeleteApplication)
		applications.PUT("/:id/status", middleware.BindJSON[dto.UpdateApplicationStatusRequest](), ctrl.Applications.UpdateApplicationStatus)
	}

	offers := v1.Group("/offer-letters")
	{
		offers.POST("", middleware.BindJSON[dto.CreateOfferLetterRequest](), ctrl.Offers.CreateOfferLetter)
		offers.GET("", ctrl.Offers.GetAllOfferLetters)
		offers.GET("/:id", ctrl.Offers.GetOfferLetterByID)
		offers.PUT("/:id", middleware.BindJSON[dto.UpdateOfferLetterRequest](), ctrl.Offers.UpdateOfferLetter)
		offers.DELETE("/:id", ctrl.Offers.DeleteOfferLetter)
	}

	v1.GET("/dashboard/stats", ctrl.Reports.GetDashboardStats)
	v1.GET("/reports/crt-fee-status", ctrl.Reports.GetCRTFeeStatusReport)
}

// SetupEventFeed exposes the live event stream for dashboards
func SetupEventFeed(router *gin.Engine, feed *websocket.Handler) {
	router.GET("/api/v1/events/ws", feed.HandleConnection)
}
