package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bellamoda/salon-booking/internal/audit"
	"github.com/bellamoda/salon-booking/internal/models"
	"github.com/bellamoda/salon-booking/internal/storage"
)

// UserHandler is the admin user management surface.
type UserHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
	audit  *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, images *storage.ImageStore, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, images: images, audit: audit}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
	Position  string `json:"position"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Position  *string `json:"position,omitempty"`
	Password  *string `json:"password,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	roleStr := strings.TrimSpace(c.Query("role"))

	q := h.db.Session(&gorm.Session{})

	if roleStr != "" {
		role, ok := models.ParseRole(roleStr)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
			return
		}
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	h.db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Username:     username,
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
		Position:     req.Position,
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	actorID := actor(c)
	h.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: gin.H{"role": role},
	})

	c.JSON(http.StatusCreated, user)
}

// Update changes profile fields. Role is immutable once set; accounts
// with the wrong role are recreated, not reassigned.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	actorID := actor(c)
	h.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image_storage_disabled"})
		return
	}

	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_image_file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image_file"})
		return
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request.Context(), file, "profiles")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed_to_upload_image"})
		return
	}

	user.ProfileImage = url
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image": url})
}
