package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/utils"
)

type AuthController struct {
	db        *gorm.DB
	jwtSecret string
	debug     bool
}

func NewAuthController(db *gorm.DB, jwtSecret string, debug bool) *AuthController {
	return &AuthController{
		db:        db,
		jwtSecret: jwtSecret,
		debug:     debug,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "The provided credentials are incorrect."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "The provided credentials are incorrect."})
		return
	}

	tokenID := uuid.New().String()
	accessToken := models.AccessToken{
		TokenID: tokenID,
		UserID:  user.ID,
		Name:    "api-token",
	}
	if err := ac.db.Create(&accessToken).Error; err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	token, err := ac.generateJWT(user.ID, user.Email, tokenID)
	if err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// Logout revokes only the token presented on this request.
func (ac *AuthController) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")

	if err := ac.db.Where("token_id = ?", tokenID).Delete(&models.AccessToken{}).Error; err != nil {
		utils.SendServerError(c, err, ac.debug)
		return
	}

	utils.SendMessage(c, http.StatusOK, "Logged out successfully")
}

func (ac *AuthController) GetUser(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := ac.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) generateJWT(userID uint, email, tokenID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"jti":     tokenID,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
