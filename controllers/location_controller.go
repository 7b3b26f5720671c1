package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/utils"
)

// LocationController is the explicit CRUD surface for locations. It does not
// go through the resolver; lazily created rows come from the activity,
// complaint and report paths.
type LocationController struct {
	db    *gorm.DB
	debug bool
}

func NewLocationController(db *gorm.DB, debug bool) *LocationController {
	return &LocationController{db: db, debug: debug}
}

type CreateLocationRequest struct {
	Name      string   `form:"name" json:"name" binding:"required"`
	Address   string   `form:"address" json:"address" binding:"required"`
	Latitude  *float64 `form:"latitude" json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" json:"longitude" binding:"required,gte=-180,lte=180"`
}

type UpdateLocationRequest struct {
	Name      *string  `form:"name" json:"name"`
	Address   *string  `form:"address" json:"address"`
	Latitude  *float64 `form:"latitude" json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}

func (lc *LocationController) GetLocations(c *gin.Context) {
	var locations []models.Location
	if err := lc.db.Find(&locations).Error; err != nil {
		utils.SendServerError(c, err, lc.debug)
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (lc *LocationController) CreateLocation(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var nameCount int64
	lc.db.Model(&models.Location{}).Where("location_name = ?", req.Name).Count(&nameCount)
	if nameCount > 0 {
		utils.SendFieldError(c, "name", "The name has already been taken.")
		return
	}

	var addressCount int64
	lc.db.Model(&models.Location{}).Where("location_address = ?", req.Address).Count(&addressCount)
	if addressCount > 0 {
		utils.SendFieldError(c, "address", "The address has already been taken.")
		return
	}

	location := models.Location{
		LocationName:    req.Name,
		LocationAddress: req.Address,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
	}

	if err := lc.db.Create(&location).Error; err != nil {
		utils.SendServerError(c, err, lc.debug)
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (lc *LocationController) GetLocation(c *gin.Context) {
	id := c.Param("id")

	var location models.Location
	if err := lc.db.First(&location, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Location not found")
		return
	}

	c.JSON(http.StatusOK, location)
}

func (lc *LocationController) UpdateLocation(c *gin.Context) {
	id := c.Param("id")

	var location models.Location
	if err := lc.db.First(&location, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Location not found")
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if req.Name != nil {
		var nameCount int64
		lc.db.Model(&models.Location{}).
			Where("location_name = ? AND id != ?", *req.Name, location.ID).
			Count(&nameCount)
		if nameCount > 0 {
			utils.SendFieldError(c, "name", "The name has already been taken.")
			return
		}
		location.LocationName = *req.Name
	}
	if req.Address != nil {
		var addressCount int64
		lc.db.Model(&models.Location{}).
			Where("location_address = ? AND id != ?", *req.Address, location.ID).
			Count(&addressCount)
		if addressCount > 0 {
			utils.SendFieldError(c, "address", "The address has already been taken.")
			return
		}
		location.LocationAddress = *req.Address
	}
	if req.Latitude != nil {
		location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = *req.Longitude
	}

	if err := lc.db.Save(&location).Error; err != nil {
		utils.SendServerError(c, err, lc.debug)
		return
	}

	c.JSON(http.StatusOK, location)
}

func (lc *LocationController) DeleteLocation(c *gin.Context) {
	id := c.Param("id")

	var location models.Location
	if err := lc.db.First(&location, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Location not found")
		return
	}

	if err := lc.db.Delete(&location).Error; err != nil {
		utils.SendServerError(c, err, lc.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Location deleted successfully")
}
