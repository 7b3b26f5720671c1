package controllers

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/repositories"
	"pesisir-api/storage"
	"pesisir-api/utils"
)

type ReportController struct {
	db           *gorm.DB
	locationRepo *repositories.LocationRepository
	disk         storage.Disk
	debug        bool
}

func NewReportController(db *gorm.DB, locationRepo *repositories.LocationRepository, disk storage.Disk, debug bool) *ReportController {
	return &ReportController{
		db:           db,
		locationRepo: locationRepo,
		disk:         disk,
		debug:        debug,
	}
}

type CreateReportRequest struct {
	Name       string   `form:"name" json:"name" binding:"required"`
	Email      string   `form:"email" json:"email" binding:"required,email"`
	Address    string   `form:"address" json:"address" binding:"required"`
	Phone      string   `form:"phone" json:"phone" binding:"required"`
	Desc       string   `form:"desc" json:"desc" binding:"required"`
	LocName    string   `form:"loc_name" json:"loc_name" binding:"required"`
	LocAddress string   `form:"loc_address" json:"loc_address" binding:"required"`
	Lat        *float64 `form:"lat" json:"lat" binding:"omitempty,gte=-90,lte=90"`
	Long       *float64 `form:"long" json:"long" binding:"omitempty,gte=-180,lte=180"`
}

type UpdateReportRequest struct {
	Name    *string `form:"name" json:"name"`
	Email   *string `form:"email" json:"email" binding:"omitempty,email"`
	Address *string `form:"address" json:"address"`
	Phone   *string `form:"phone" json:"phone"`
	Desc    *string `form:"desc" json:"desc"`
}

func (rc *ReportController) GetReports(c *gin.Context) {
	var reports []models.Report
	if err := rc.db.Preload("Location").Find(&reports).Error; err != nil {
		utils.SendServerError(c, err, rc.debug)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (rc *ReportController) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		utils.SendFieldError(c, "image", "The image field is required.")
		return
	}
	if msg := utils.ValidateImage(fh); msg != "" {
		utils.SendFieldError(c, "image", msg)
		return
	}
	imagePath, err := rc.disk.Put("reports", fh)
	if err != nil {
		utils.SendServerError(c, err, rc.debug)
		return
	}

	// Reports may omit coordinates; a brand-new location then gets placeholder
	// coordinates. The resolver discards them anyway when the place exists.
	lat, long := randomCoordinates()
	if req.Lat != nil {
		lat = *req.Lat
	}
	if req.Long != nil {
		long = *req.Long
	}

	location, err := rc.locationRepo.FindOrCreate(req.LocName, req.LocAddress, lat, long)
	if err != nil {
		utils.SendServerError(c, err, rc.debug)
		return
	}

	report := models.Report{
		ReporterName:    req.Name,
		ReporterEmail:   req.Email,
		ReporterAddress: req.Address,
		ReporterPhone:   req.Phone,
		ReportDesc:      req.Desc,
		ImagePath:       imagePath,
		LocationID:      location.ID,
	}

	if err := rc.db.Create(&report).Error; err != nil {
		utils.SendServerError(c, err, rc.debug)
		return
	}

	report.Location = location
	c.JSON(http.StatusCreated, report)
}

func (rc *ReportController) GetReport(c *gin.Context) {
	id := c.Param("id")

	var report models.Report
	if err := rc.db.Preload("Location").First(&report, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Report not found")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) UpdateReport(c *gin.Context) {
	id := c.Param("id")

	var report models.Report
	if err := rc.db.First(&report, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Report not found")
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if req.Name != nil {
		report.ReporterName = *req.Name
	}
	if req.Email != nil {
		report.ReporterEmail = *req.Email
	}
	if req.Address != nil {
		report.ReporterAddress = *req.Address
	}
	if req.Phone != nil {
		report.ReporterPhone = *req.Phone
	}
	if req.Desc != nil {
		report.ReportDesc = *req.Desc
	}

	if fh, err := c.FormFile("image"); err == nil {
		if msg := utils.ValidateImage(fh); msg != "" {
			utils.SendFieldError(c, "image", msg)
			return
		}
		removeStoredFile(rc.db, rc.disk, report.ImagePath)
		path, err := rc.disk.Put("reports", fh)
		if err != nil {
			utils.SendServerError(c, err, rc.debug)
			return
		}
		report.ImagePath = path
	}

	if err := rc.db.Save(&report).Error; err != nil {
		utils.SendServerError(c, err, rc.debug)
		return
	}

	if err := rc.db.Preload("Location").First(&report, report.ID).Error; err != nil {
		utils.SendServerError(c, err, rc.debug)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) DeleteReport(c *gin.Context) {
	id := c.Param("id")

	var report models.Report
	if err := rc.db.First(&report, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Report not found")
		return
	}

	removeStoredFile(rc.db, rc.disk, report.ImagePath)

	if err := rc.db.Delete(&report).Error; err != nil {
		utils.SendServerError(c, err, rc.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Report deleted successfully")
}

func randomCoordinates() (float64, float64) {
	lat := -90 + rand.Float64()*180
	long := -180 + rand.Float64()*360
	return lat, long
}
