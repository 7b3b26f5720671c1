package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/repositories"
	"pesisir-api/storage"
	"pesisir-api/utils"
)

type ActivityController struct {
	db           *gorm.DB
	locationRepo *repositories.LocationRepository
	disk         storage.Disk
	debug        bool
}

func NewActivityController(db *gorm.DB, locationRepo *repositories.LocationRepository, disk storage.Disk, debug bool) *ActivityController {
	return &ActivityController{
		db:           db,
		locationRepo: locationRepo,
		disk:         disk,
		debug:        debug,
	}
}

type CreateActivityRequest struct {
	Name       string   `form:"name" json:"name" binding:"required"`
	Desc       string   `form:"desc" json:"desc"`
	Date       string   `form:"date" json:"date" binding:"required,datetime=2006-01-02"`
	Time       string   `form:"time" json:"time" binding:"required,datetime=15:04"`
	Fee        *int     `form:"fee" json:"fee" binding:"required,min=10000"`
	LocName    string   `form:"loc_name" json:"loc_name" binding:"required"`
	LocAddress string   `form:"loc_address" json:"loc_address" binding:"required"`
	Lat        *float64 `form:"lat" json:"lat" binding:"required,gte=-90,lte=90"`
	Long       *float64 `form:"long" json:"long" binding:"required,gte=-180,lte=180"`
}

type UpdateActivityRequest struct {
	Name       *string  `form:"name" json:"name"`
	Desc       *string  `form:"desc" json:"desc"`
	Date       *string  `form:"date" json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time       *string  `form:"time" json:"time" binding:"omitempty,datetime=15:04"`
	Fee        *int     `form:"fee" json:"fee" binding:"omitempty,min=0"`
	LocName    *string  `form:"loc_name" json:"loc_name"`
	LocAddress *string  `form:"loc_address" json:"loc_address"`
	Lat        *float64 `form:"lat" json:"lat" binding:"omitempty,gte=-90,lte=90"`
	Long       *float64 `form:"long" json:"long" binding:"omitempty,gte=-180,lte=180"`
}

func (ac *ActivityController) GetActivities(c *gin.Context) {
	var activities []models.Activity
	if err := ac.db.Preload("Location").Preload("Volunteers").Find(&activities).Error; err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	c.JSON(http.StatusOK, activities)
}

func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var nameCount int64
	ac.db.Model(&models.Activity{}).Where("activity_name = ?", req.Name).Count(&nameCount)
	if nameCount > 0 {
		utils.SendFieldError(c, "name", "The name has already been taken.")
		return
	}

	// Proof image is optional for activities.
	imagePath := ""
	if fh, err := c.FormFile("image"); err == nil {
		if msg := utils.ValidateImage(fh); msg != "" {
			utils.SendFieldError(c, "image", msg)
			return
		}
		path, err := ac.disk.Put("activities", fh)
		if err != nil {
			utils.SendServerError(c, err, ac.debug)
			return
		}
		imagePath = path
	}

	location, err := ac.locationRepo.FindOrCreate(req.LocName, req.LocAddress, *req.Lat, *req.Long)
	if err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	activity := models.Activity{
		ActivityName:   req.Name,
		ActivityDesc:   req.Desc,
		ActivityDate:   req.Date,
		ActivityTime:   req.Time,
		ActivityStatus: models.DeriveActivityStatus(req.Date, todayString()),
		ActivityFee:    *req.Fee,
		ImagePath:      imagePath,
		LocationID:     location.ID,
	}

	if err := ac.db.Create(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.SendFieldError(c, "name", "The name has already been taken.")
			return
		}
		utils.SendServerError(c, err, ac.debug)
		return
	}

	activity.Location = location
	c.JSON(http.StatusCreated, activity)
}

func (ac *ActivityController) GetActivity(c *gin.Context) {
	id := c.Param("id")

	var activity models.Activity
	if err := ac.db.Preload("Location").Preload("Volunteers").First(&activity, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Activity not found")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// GetVolunteers lists the volunteers registered for one activity.
func (ac *ActivityController) GetVolunteers(c *gin.Context) {
	id := c.Param("id")

	var activity models.Activity
	if err := ac.db.First(&activity, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Activity not found")
		return
	}

	var volunteers []models.Volunteer
	if err := ac.db.Where("activity_id = ?", activity.ID).Find(&volunteers).Error; err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	c.JSON(http.StatusOK, volunteers)
}

func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	id := c.Param("id")

	var activity models.Activity
	if err := ac.db.First(&activity, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Activity not found")
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	if req.Name != nil {
		var nameCount int64
		ac.db.Model(&models.Activity{}).
			Where("activity_name = ? AND id != ?", *req.Name, activity.ID).
			Count(&nameCount)
		if nameCount > 0 {
			utils.SendFieldError(c, "name", "The name has already been taken.")
			return
		}
		activity.ActivityName = *req.Name
	}
	if req.Desc != nil {
		activity.ActivityDesc = *req.Desc
	}
	if req.Time != nil {
		activity.ActivityTime = *req.Time
	}
	if req.Fee != nil {
		activity.ActivityFee = *req.Fee
	}

	// Resolve a new location only when both halves of the natural key came in.
	if req.LocName != nil && req.LocAddress != nil {
		lat, long := 0.0, 0.0
		if req.Lat != nil {
			lat = *req.Lat
		}
		if req.Long != nil {
			long = *req.Long
		}
		location, err := ac.locationRepo.FindOrCreate(*req.LocName, *req.LocAddress, lat, long)
		if err != nil {
			utils.SendServerError(c, err, ac.debug)
			return
		}
		activity.LocationID = location.ID
	}

	// The status is re-derived only when the date changes; otherwise the
	// stored value is preserved verbatim.
	if req.Date != nil {
		activity.ActivityDate = *req.Date
		activity.ActivityStatus = models.DeriveActivityStatus(*req.Date, todayString())
	}

	if fh, err := c.FormFile("image"); err == nil {
		if msg := utils.ValidateImage(fh); msg != "" {
			utils.SendFieldError(c, "image", msg)
			return
		}
		removeStoredFile(ac.db, ac.disk, activity.ImagePath)
		path, err := ac.disk.Put("activities", fh)
		if err != nil {
			utils.SendServerError(c, err, ac.debug)
			return
		}
		activity.ImagePath = path
	}

	if err := ac.db.Save(&activity).Error; err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	if err := ac.db.Preload("Location").Preload("Volunteers").First(&activity, activity.ID).Error; err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	id := c.Param("id")

	var activity models.Activity
	if err := ac.db.First(&activity, "id = ?", id).Error; err != nil {
		utils.SendNotFound(c, "Activity not found")
		return
	}

	removeStoredFile(ac.db, ac.disk, activity.ImagePath)

	if err := ac.db.Delete(&activity).Error; err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Activity deleted successfully")
}
