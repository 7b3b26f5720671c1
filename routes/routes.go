package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/config"
	"pesisir-api/controllers"
	"pesisir-api/middleware"
	"pesisir-api/repositories"
	"pesisir-api/services"
	"pesisir-api/storage"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, disk storage.Disk) {
	locationRepo := repositories.NewLocationRepository(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, cfg.Debug)
	activityController := controllers.NewActivityController(db, locationRepo, disk, cfg.Debug)
	volunteerController := controllers.NewVolunteerController(db, disk, emailService, cfg.Debug)
	locationController := controllers.NewLocationController(db, cfg.Debug)
	complaintController := controllers.NewComplaintController(db, locationRepo, disk, cfg.Debug)
	reportController := controllers.NewReportController(db, locationRepo, disk, cfg.Debug)
	donationController := controllers.NewDonationController(db, disk, cfg.Debug)
	donationMethodController := controllers.NewDonationMethodController(db, cfg.Debug)

	// Health check
	r.GET("/up", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Auth
	api.POST("/login", middleware.RateLimit(10, 5), authController.Login)

	authenticated := api.Group("/")
	authenticated.Use(middleware.AuthMiddleware(db, cfg.JWTSecret))
	{
		authenticated.GET("/user", authController.GetUser)
		authenticated.POST("/logout", authController.Logout)
	}

	// Activities
	api.GET("/activities", activityController.GetActivities)
	api.POST("/activities", activityController.CreateActivity)
	api.GET("/activities/:id", activityController.GetActivity)
	api.GET("/activities/:id/volunteers", activityController.GetVolunteers)
	api.PUT("/activities/:id", activityController.UpdateActivity)
	api.DELETE("/activities/:id", activityController.DeleteActivity)

	// Volunteers
	api.GET("/volunteers", volunteerController.GetVolunteers)
	api.POST("/volunteers", volunteerController.CreateVolunteer)
	api.GET("/volunteers/:id", volunteerController.GetVolunteer)
	api.PUT("/volunteers/:id", volunteerController.UpdateVolunteer)
	api.DELETE("/volunteers/:id", volunteerController.DeleteVolunteer)

	// Locations
	api.GET("/locations", locationController.GetLocations)
	api.POST("/locations", locationController.CreateLocation)
	api.GET("/locations/:id", locationController.GetLocation)
	api.PUT("/locations/:id", locationController.UpdateLocation)
	api.DELETE("/locations/:id", locationController.DeleteLocation)

	// Complaints
	api.GET("/complaints", complaintController.GetComplaints)
	api.POST("/complaints", complaintController.CreateComplaint)
	api.GET("/complaints/:id", complaintController.GetComplaint)
	api.PUT("/complaints/:id", complaintController.UpdateComplaint)
	api.DELETE("/complaints/:id", complaintController.DeleteComplaint)

	// Reports
	api.GET("/reports", reportController.GetReports)
	api.POST("/reports", reportController.CreateReport)
	api.GET("/reports/:id", reportController.GetReport)
	api.PUT("/reports/:id", reportController.UpdateReport)
	api.DELETE("/reports/:id", reportController.DeleteReport)

	// Donations
	api.GET("/donations", donationController.GetDonations)
	api.POST("/donations", donationController.CreateDonation)
	api.GET("/donations/:id", donationController.GetDonation)
	api.PUT("/donations/:id", donationController.UpdateDonation)
	api.DELETE("/donations/:id", donationController.DeleteDonation)

	// Donation methods
	api.GET("/donation-methods", donationMethodController.GetDonationMethods)
	api.POST("/donation-methods", donationMethodController.CreateDonationMethod)
	api.GET("/donation-methods/:id", donationMethodController.GetDonationMethod)
	api.PUT("/donation-methods/:id", donationMethodController.UpdateDonationMethod)
	api.DELETE("/donation-methods/:id", donationMethodController.DeleteDonationMethod)
}
