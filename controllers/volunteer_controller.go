package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/services"
	"pesisir-api/storage"
	"pesisir-api/utils"
)

type VolunteerController struct {
	db           *gorm.DB
	disk         storage.Disk
	emailService *services.EmailService
	debug        bool
}

func NewVolunteerController(db *gorm.DB, disk storage.Disk, emailService *services.EmailService, debug bool) *VolunteerController {
	return &VolunteerController{
		db:           db,
		disk:         disk,
		emailService: emailService,
		debug:        debug,
	}
}

type CreateVolunteerRequest struct {
	Name          string `form:"name" json:"name" binding:"required"`
	Email         string `form:"email" json:"email" binding:"required,email"`
	Address       string `form:"address" json:"address" binding:"required"`
	Phone         string `form:"phone" json:"phone" binding:"required"`
	Gender        string `form:"gender" json:"gender" binding:"required"`
	ReasonDesc    string `form:"reason_desc" json:"reason_desc" binding:"required"`
	PaymentMethod string `form:"payment_method" json:"payment_method" binding:"required"`
	ActID         uint   `form:"act_id" json:"act_id" binding:"required"`
}

type UpdateVolunteerRequest struct {
	Name          *string `form:"name" json:"name"`
	Email         *string `form:"email" json:"email" binding:"omitempty,email"`
	Address       *string `form:"address" json:"address"`
	Phone         *string `form:"phone" json:"phone"`
	Gender        *string `form:"gender" json:"gender"`
	ReasonDesc    *string `form:"reason_desc" json:"reason_desc"`
	PaymentMethod *string `form:"payment_method" json:"payment_method"`
}

func (vc *VolunteerController) GetVolunteers(c *gin.Context) {
	var volunteers []models.Volunteer
	if err := vc.db.Find(&volunteers).Error; err != nil {
		utils.SendServerError(c, err, vc.debug)
		return
	}

	c.JSON(http.StatusOK, volunteers)
}

func (vc *VolunteerController) CreateVolunteer(c *gin.Context) {
	var req CreateVolunteerRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var activity models.Activity
	if err := vc.db.First(&activity, req.ActID).Error; err != nil {
		utils.SendFieldError(c, "act_id", "The selected act_id is invalid.")
		return
	}

	// One email may register for at most one activity. The unique index on
	// volunteer_email backs this check, so concurrent duplicate submissions
	// cannot slip past it.
	var emailCount int64
	vc.db.Model(&models.Volunteer{}).Where("volunteer_email = ?", req.Email).Count(&emailCount)
	if emailCount > 0 {
		utils.SendConflict(c, "This email has already registered for an activity")
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
	imagePath, err := vc.disk.Put("volunteers", fh)
	if err != nil {
		utils.SendServerError(c, err, vc.debug)
		return
	}

	volunteer := models.Volunteer{
		VolunteerName:    req.Name,
		VolunteerEmail:   req.Email,
		VolunteerAddress: req.Address,
		VolunteerPhone:   req.Phone,
		VolunteerGender:  req.Gender,
		ReasonDesc:       req.ReasonDesc,
		PaymentMethod:    req.PaymentMethod,
		ImageSlip:        imagePath,
		ActivityID:       activity.ID,
	}

	if err := vc.db.Create(&volunteer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendConflict(c, "This email has already registered for an activity")
			return
		}
		utils.SendServerError(c, err, vc.debug)
		return
	}

	go func() {
		if err := vc.emailService.SendVolunteerConfirmation(&volunteer, &activity); err != nil {
			log.Printf("Failed to send volunteer confirmation: %v", err)
		}
	}()

	c.JSON(http.StatusCreated, volunteer)
}

func (vc *VolunteerController) GetVolunteer(c *gin.Context) {
	id := c.Param("id")

	var volunteer models.Volunteer
	if err := vc.db.Preload("Activity").First(&volunteer, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Volunteer not found")
		return
	}

	c.JSON(http.StatusOK, volunteer)
}

func (vc *VolunteerController) UpdateVolunteer(c *gin.Context) {
	id := c.Param("id")

	var volunteer models.Volunteer
	if err := vc.db.First(&volunteer, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Volunteer not found")
		return
	}

	var req UpdateVolunteerRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if req.Email != nil && *req.Email != volunteer.VolunteerEmail {
		var emailCount int64
		vc.db.Model(&models.Volunteer{}).
			Where("volunteer_email = ? AND id != ?", *req.Email, volunteer.ID).
			Count(&emailCount)
		if emailCount > 0 {
			utils.SendConflict(c, "This email has already registered for an activity")
			return
		}
		volunteer.VolunteerEmail = *req.Email
	}
	if req.Name != nil {
		volunteer.VolunteerName = *req.Name
	}
	if req.Address != nil {
		volunteer.VolunteerAddress = *req.Address
	}
	if req.Phone != nil {
		volunteer.VolunteerPhone = *req.Phone
	}
	if req.Gender != nil {
		volunteer.VolunteerGender = *req.Gender
	}
	if req.ReasonDesc != nil {
		volunteer.ReasonDesc = *req.ReasonDesc
	}
	if req.PaymentMethod != nil {
		volunteer.PaymentMethod = *req.PaymentMethod
	}

	if fh, err := c.FormFile("image"); err == nil {
		if msg := utils.ValidateImage(fh); msg != "" {
			utils.SendFieldError(c, "image", msg)
			return
		}
		removeStoredFile(vc.db, vc.disk, volunteer.ImageSlip)
		path, err := vc.disk.Put("volunteers", fh)
		if err != nil {
			utils.SendServerError(c, err, vc.debug)
			return
		}
		volunteer.ImageSlip = path
	}

	if err := vc.db.Save(&volunteer).Error; err != nil {
		utils.SendServerError(c, err, vc.debug)
		return
	}

	c.JSON(http.StatusOK, volunteer)
}

func (vc *VolunteerController) DeleteVolunteer(c *gin.Context) {
	id := c.Param("id")

	var volunteer models.Volunteer
	if err := vc.db.First(&volunteer, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Volunteer not found")
		return
	}

	removeStoredFile(vc.db, vc.disk, volunteer.ImageSlip)

	if err := vc.db.Delete(&volunteer).Error; err != nil {
		utils.SendServerError(c, err, vc.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Volunteer deleted successfully")
}
