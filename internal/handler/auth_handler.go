package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shop-service/internal/middleware"
	"shop-service/internal/model"
	"shop-service/pkg/database"
	"shop-service/pkg/jwtutil"
	"shop-service/pkg/logger"
	shopmetrics "shop-service/prometheus"
)

// SignUpRequest defines the structure for account creation requests
type SignUpRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInRequest defines the structure for sign-in requests
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUp registers a new account and returns an access token. A taken
// username is a conflict, not a generic failure.
func SignUp(c echo.Context) error {
	log := logger.FromContext(c)

	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid sign-up request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" || req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, username and password are required"})
	}

	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var existing model.User
	result := database.GetDB().Where("username = ?", req.Username).First(&existing)
	if result.Error == nil {
		log.Warn("Username already taken", zap.String("username", req.Username))
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already registered"})
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Error("Failed to check username", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	user := model.User{
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.Name,
		Profile:   model.UserProfile{FullName: req.Name},
	}

	defer shopmetrics.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already registered"})
		}
		log.Error("Failed to create user", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	token, err := jwtutil.GenerateToken(user.Username, user.ID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User registered", zap.String("username", user.Username))
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

// SignIn verifies credentials and returns an access token.
func SignIn(c echo.Context) error {
	log := logger.FromContext(c)

	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid sign-in request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer shopmetrics.TrackDBOperation("query")(time.Now())
	var user model.User
	if result := database.GetDB().Where("username = ?", req.Username).First(&user); result.Error != nil {
		log.Warn("User not found", zap.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(user.Username, user.ID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User signed in", zap.String("username", user.Username))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// SignOut acknowledges a sign-out. Tokens are stateless; the client
// discards its copy and the token expires on its own.
func SignOut(c echo.Context) error {
	if _, ok := middleware.UserID(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "signed out"})
}
