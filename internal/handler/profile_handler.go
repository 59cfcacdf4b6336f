package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shop-service/internal/middleware"
	"shop-service/internal/model"
	"shop-service/pkg/database"
	"shop-service/pkg/logger"
	"shop-service/pkg/media"
	shopmetrics "shop-service/prometheus"
)

// ProfileRequest defines the structure for profile update requests
type ProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

// PasswordRequest defines the structure for password change requests
type PasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProfileHandler manages the authenticated user's profile.
type ProfileHandler struct {
	media *media.Store
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler(store *media.Store) *ProfileHandler {
	return &ProfileHandler{media: store}
}

// Get returns the user's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	profile, err := h.loadProfile(c, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Update rewrites the profile's contact fields.
func (h *ProfileHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid profile request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	profile, err := h.loadProfile(c, userID)
	if err != nil {
		return err
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.City = req.City
	profile.Address = req.Address

	defer shopmetrics.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(profile); result.Error != nil {
		log.Error("Failed to update profile", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update profile"})
	}

	log.Info("Profile updated", zap.Uint("user_id", userID))
	return c.JSON(http.StatusOK, profile)
}

// ChangePassword verifies the current password and replaces it.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid password request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "current and new password are required"})
	}

	var user model.User
	if result := database.GetDB().First(&user, userID); result.Error != nil {
		log.Error("User not found", zap.Uint("user_id", userID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "current password is incorrect"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "password change failed"})
	}

	defer shopmetrics.TrackDBOperation("update")(time.Now())
	if err := database.GetDB().Model(&user).Update("password", string(hashed)).Error; err != nil {
		log.Error("Failed to update password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "password change failed"})
	}

	log.Info("Password changed", zap.Uint("user_id", userID))
	return c.JSON(http.StatusOK, echo.Map{"success": "password changed"})
}

// UploadAvatar stores a new avatar image and drops the previous file.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	log := logger.FromContext(c)
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "avatar file is required"})
	}

	profile, loadErr := h.loadProfile(c, userID)
	if loadErr != nil {
		return loadErr
	}

	src, err := file.Open()
	if err != nil {
		log.Error("Failed to open upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "avatar upload failed"})
	}
	defer src.Close()

	path, err := h.media.Save("avatars", file.Filename, src)
	if err != nil {
		log.Error("Failed to store avatar", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "avatar upload failed"})
	}

	if profile.Avatar != "" && profile.Avatar != path {
		if err := h.media.Remove(profile.Avatar); err != nil {
			log.Warn("Failed to remove old avatar", zap.String("path", profile.Avatar), zap.Error(err))
		}
	}

	profile.Avatar = path
	defer shopmetrics.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(profile); result.Error != nil {
		log.Error("Failed to update avatar", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "avatar upload failed"})
	}

	log.Info("Avatar updated", zap.Uint("user_id", userID), zap.String("path", path))
	return c.JSON(http.StatusOK, profile)
}

// loadProfile fetches the profile row, creating an empty one for
// accounts registered before profiles existed.
func (h *ProfileHandler) loadProfile(c echo.Context, userID uint) (*model.UserProfile, error) {
	log := logger.FromContext(c)

	var profile model.UserProfile
	result := database.GetDB().Where("user_id = ?", userID).FirstOrCreate(&profile, model.UserProfile{UserID: userID})
	if result.Error != nil {
		log.Error("Failed to load profile", zap.Uint("user_id", userID), zap.Error(result.Error))
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load profile"})
	}
	return &profile, nil
}
