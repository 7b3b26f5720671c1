package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/storage"
	"pesisir-api/utils"
)

type DonationController struct {
	db    *gorm.DB
	disk  storage.Disk
	debug bool
}

func NewDonationController(db *gorm.DB, disk storage.Disk, debug bool) *DonationController {
	return &DonationController{db: db, disk: disk, debug: debug}
}

type CreateDonationRequest struct {
	Amount   *int `form:"amount" json:"amount" binding:"required,min=10000"`
	MethodID uint `form:"method_id" json:"method_id" binding:"required"`
}

type UpdateDonationRequest struct {
	Amount   *int  `form:"amount" json:"amount" binding:"omitempty,min=10000"`
	MethodID *uint `form:"method_id" json:"method_id"`
}

func (dc *DonationController) GetDonations(c *gin.Context) {
	var donations []models.Donation
	if err := dc.db.Order("id DESC").Find(&donations).Error; err != nil {
		utils.SendServerError(c, err, dc.debug)
		return
	}

	c.JSON(http.StatusOK, donations)
}

func (dc *DonationController) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var method models.DonationMethod
	if err := dc.db.First(&method, req.MethodID).Error; err != nil {
		utils.SendFieldError(c, "method_id", "The selected method_id is invalid.")
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
	imagePath, err := dc.disk.Put("donations", fh)
	if err != nil {
		utils.SendServerError(c, err, dc.debug)
		return
	}

	donation := models.Donation{
		DonationAmount:   *req.Amount,
		ImageSlip:        imagePath,
		DonationMethodID: method.ID,
	}

	if err := dc.db.Create(&donation).Error; err != nil {
		utils.SendServerError(c, err, dc.debug)
		return
	}

	c.JSON(http.StatusCreated, donation)
}

func (dc *DonationController) GetDonation(c *gin.Context) {
	id := c.Param("id")

	var donation models.Donation
	if err := dc.db.First(&donation, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Donation not found")
		return
	}

	c.JSON(http.StatusOK, donation)
}

func (dc *DonationController) UpdateDonation(c *gin.Context) {
	id := c.Param("id")

	var donation models.Donation
	if err := dc.db.First(&donation, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Donation not found")
		return
	}

	var req UpdateDonationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if req.Amount != nil {
		donation.DonationAmount = *req.Amount
	}
	if req.MethodID != nil {
		var method models.DonationMethod
		if err := dc.db.First(&method, *req.MethodID).Error; err != nil {
			utils.SendFieldError(c, "method_id", "The selected method_id is invalid.")
			return
		}
		donation.DonationMethodID = method.ID
	}

	if fh, err := c.FormFile("image"); err == nil {
		if msg := utils.ValidateImage(fh); msg != "" {
			utils.SendFieldError(c, "image", msg)
			return
		}
		removeStoredFile(dc.db, dc.disk, donation.ImageSlip)
		path, err := dc.disk.Put("donations", fh)
		if err != nil {
			utils.SendServerError(c, err, dc.debug)
			return
		}
		donation.ImageSlip = path
	}

	if err := dc.db.Save(&donation).Error; err != nil {
		utils.SendServerError(c, err, dc.debug)
		return
	}

	c.JSON(http.StatusOK, donation)
}

func (dc *DonationController) DeleteDonation(c *gin.Context) {
	id := c.Param("id")

	var donation models.Donation
	if err := dc.db.First(&donation, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Donation not found")
		return
	}

	removeStoredFile(dc.db, dc.disk, donation.ImageSlip)

	if err := dc.db.Delete(&donation).Error; err != nil {
		utils.SendServerError(c, err, dc.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Donation deleted successfully")
}
