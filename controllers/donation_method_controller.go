package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/utils"
)

type DonationMethodController struct {
	db    *gorm.DB
	debug bool
}

func NewDonationMethodController(db *gorm.DB, debug bool) *DonationMethodController {
	return &DonationMethodController{db: db, debug: debug}
}

type CreateDonationMethodRequest struct {
	Method string `form:"method" json:"method" binding:"required"`
	Number string `form:"number" json:"number" binding:"required,numeric"`
	Owner  string `form:"owner" json:"owner" binding:"required"`
}

type UpdateDonationMethodRequest struct {
	Method *string `form:"method" json:"method"`
	Number *string `form:"number" json:"number" binding:"omitempty,numeric"`
	Owner  *string `form:"owner" json:"owner"`
}

func (dmc *DonationMethodController) GetDonationMethods(c *gin.Context) {
	var methods []models.DonationMethod
	if err := dmc.db.Find(&methods).Error; err != nil {
		utils.SendServerError(c, err, dmc.debug)
		return
	}

	c.JSON(http.StatusOK, methods)
}

func (dmc *DonationMethodController) CreateDonationMethod(c *gin.Context) {
	var req CreateDonationMethodRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	method := models.DonationMethod{
		MethodName:    req.Method,
		AccountNumber: req.Number,
		OwnerName:     req.Owner,
	}

	if err := dmc.db.Create(&method).Error; err != nil {
		utils.SendServerError(c, err, dmc.debug)
		return
	}

	c.JSON(http.StatusCreated, method)
}

func (dmc *DonationMethodController) GetDonationMethod(c *gin.Context) {
	id := c.Param("id")

	var method models.DonationMethod
	if err := dmc.db.First(&method, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Method not found")
		return
	}

	c.JSON(http.StatusOK, method)
}

func (dmc *DonationMethodController) UpdateDonationMethod(c *gin.Context) {
	id := c.Param("id")

	var method models.DonationMethod
	if err := dmc.db.First(&method, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Method not found")
		return
	}

	var req UpdateDonationMethodRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if req.Method != nil {
		method.MethodName = *req.Method
	}
	if req.Number != nil {
		method.AccountNumber = *req.Number
	}
	if req.Owner != nil {
		method.OwnerName = *req.Owner
	}

	if err := dmc.db.Save(&method).Error; err != nil {
		utils.SendServerError(c, err, dmc.debug)
		return
	}

	c.JSON(http.StatusOK, method)
}

func (dmc *DonationMethodController) DeleteDonationMethod(c *gin.Context) {
	id := c.Param("id")

	var method models.DonationMethod
	if err := dmc.db.First(&method, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Method not found")
		return
	}

	if err := dmc.db.Delete(&method).Error; err != nil {
		utils.SendServerError(c, err, dmc.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Method deleted successfully")
}
