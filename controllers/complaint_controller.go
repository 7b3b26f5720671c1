package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/repositories"
	"pesisir-api/storage"
	"pesisir-api/utils"
)

type ComplaintController struct {
	db           *gorm.DB
	locationRepo *repositories.LocationRepository
	disk         storage.Disk
	debug        bool
}

func NewComplaintController(db *gorm.DB, locationRepo *repositories.LocationRepository, disk storage.Disk, debug bool) *ComplaintController {
	return &ComplaintController{
		db:           db,
		locationRepo: locationRepo,
		disk:         disk,
		debug:        debug,
	}
}

type CreateComplaintRequest struct {
	Name       string   `form:"name" json:"name" binding:"required"`
	Email      string   `form:"email" json:"email" binding:"required,email"`
	Address    string   `form:"address" json:"address" binding:"required"`
	Phone      string   `form:"phone" json:"phone" binding:"required"`
	Desc       string   `form:"desc" json:"desc" binding:"required"`
	Date       string   `form:"date" json:"date" binding:"required,datetime=2006-01-02"`
	LocName    string   `form:"loc_name" json:"loc_name" binding:"required"`
	LocAddress string   `form:"loc_address" json:"loc_address" binding:"required"`
	Lat        *float64 `form:"lat" json:"lat" binding:"required,gte=-90,lte=90"`
	Long       *float64 `form:"long" json:"long" binding:"required,gte=-180,lte=180"`
}

type UpdateComplaintRequest struct {
	Name    *string `form:"name" json:"name"`
	Email   *string `form:"email" json:"email" binding:"omitempty,email"`
	Address *string `form:"address" json:"address"`
	Phone   *string `form:"phone" json:"phone"`
	Desc    *string `form:"desc" json:"desc"`
	Date    *string `form:"date" json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (cc *ComplaintController) GetComplaints(c *gin.Context) {
	var complaints []models.Complaint
	if err := cc.db.Preload("Location").Find(&complaints).Error; err != nil {
		utils.SendServerError(c, err, cc.debug)
		return
	}

	c.JSON(http.StatusOK, complaints)
}

func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	var req CreateComplaintRequest
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
	imagePath, err := cc.disk.Put("complaints", fh)
	if err != nil {
		utils.SendServerError(c, err, cc.debug)
		return
	}

	location, err := cc.locationRepo.FindOrCreate(req.LocName, req.LocAddress, *req.Lat, *req.Long)
	if err != nil {
		utils.SendServerError(c, err, cc.debug)
		return
	}

	complaint := models.Complaint{
		ComplainantName:    req.Name,
		ComplainantEmail:   req.Email,
		ComplainantAddress: req.Address,
		ComplainantPhone:   req.Phone,
		ComplaintDesc:      req.Desc,
		ActualDate:         req.Date,
		ImagePath:          imagePath,
		LocationID:         location.ID,
	}

	if err := cc.db.Create(&complaint).Error; err != nil {
		utils.SendServerError(c, err, cc.debug)
		return
	}

	complaint.Location = location
	c.JSON(http.StatusCreated, complaint)
}

func (cc *ComplaintController) GetComplaint(c *gin.Context) {
	id := c.Param("id")

	var complaint models.Complaint
	if err := cc.db.Preload("Location").First(&complaint, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Complaint not found")
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (cc *ComplaintController) UpdateComplaint(c *gin.Context) {
	id := c.Param("id")

	var complaint models.Complaint
	if err := cc.db.First(&complaint, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Complaint not found")
		return
	}

	var req UpdateComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if req.Name != nil {
		complaint.ComplainantName = *req.Name
	}
	if req.Email != nil {
		complaint.ComplainantEmail = *req.Email
	}
	if req.Address != nil {
		complaint.ComplainantAddress = *req.Address
	}
	if req.Phone != nil {
		complaint.ComplainantPhone = *req.Phone
	}
	if req.Desc != nil {
		complaint.ComplaintDesc = *req.Desc
	}
	if req.Date != nil {
		complaint.ActualDate = *req.Date
	}

	if fh, err := c.FormFile("image"); err == nil {
		if msg := utils.ValidateImage(fh); msg != "" {
			utils.SendFieldError(c, "image", msg)
			return
		}
		removeStoredFile(cc.db, cc.disk, complaint.ImagePath)
		path, err := cc.disk.Put("complaints", fh)
		if err != nil {
			utils.SendServerError(c, err, cc.debug)
			return
		}
		complaint.ImagePath = path
	}

	if err := cc.db.Save(&complaint).Error; err != nil {
		utils.SendServerError(c, err, cc.debug)
		return
	}

	if err := cc.db.Preload("Location").First(&complaint, complaint.ID).Error; err != nil {
		utils.SendServerError(c, err, cc.debug)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (cc *ComplaintController) DeleteComplaint(c *gin.Context) {
	id := c.Param("id")

	var complaint models.Complaint
	if err := cc.db.First(&complaint, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Complaint not found")
		return
	}

	removeStoredFile(cc.db, cc.disk, complaint.ImagePath)

	if err := cc.db.Delete(&complaint).Error; err != nil {
		utils.SendServerError(c, err, cc.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Complaint deleted successfully")
}
