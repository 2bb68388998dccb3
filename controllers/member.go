package controllers

import (
	"Chatline/middleware"
	models "Chatline/models/postgres"
	"Chatline/services/members"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Health check
// @Description Returns pong
// @Tags status
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary Register a new member
// @Description Creates a member account with a bcrypt-hashed password
// @Tags members
// @Accept json
// @Produce json
// @Param request body object{email=string,name=string,password=string} true "Member data"
// @Success 200 {object} object{id=integer,email=string,name=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func SignUp(db *gorm.DB, directory *members.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// Minimum input sanitizing
		if strings.TrimSpace(request.Email) == "" || strings.TrimSpace(request.Name) == "" ||
			strings.TrimSpace(request.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		existing, err := directory.FindByEmail(request.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking email"})
			return
		}
		if existing != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
			return
		}

		member := models.Member{
			Email:        request.Email,
			Name:         request.Name,
			PasswordHash: string(hash),
		}
		if err := db.Create(&member).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating member"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    member.ID,
			"email": member.Email,
			"name":  member.Name,
		})
	}
}

// @Summary Log in
// @Description Validates credentials and returns a JWT bearer token
// @Tags members
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{token=string,member_id=integer}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(directory *members.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if strings.TrimSpace(request.Email) == "" || strings.TrimSpace(request.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		member, err := directory.FindByEmail(request.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching member"})
			return
		}
		if member == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(request.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		token, err := middleware.GenerateToken(member.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "member_id": member.ID})
	}
}

// @Summary Get public member info
// @Description Returns the id and display name of a member
// @Tags members
// @Produce json
// @Param id path integer true "Member id"
// @Success 200 {object} object{id=integer,name=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [get]
func GetMemberPublicInfo(directory *members.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
			return
		}

		member, err := directory.FindByID(uint(id))
		if err != nil {
			if err == members.ErrMemberNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching member"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": member.ID, "name": member.Name})
	}
}
