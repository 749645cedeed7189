// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"suscriptores_backend/internals/configs"
	"suscriptores_backend/internals/features/users/dto"
	"suscriptores_backend/internals/features/users/model"
	helper "suscriptores_backend/internals/helpers"
)

const tokenTTL = 12 * time.Hour

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// SeedAdmin creates the initial admin account when ADMIN_PASSWORD is set and
// the users table is still empty. The ledger endpoints never depend on it —
// identity only ever reaches handlers as an opaque context value.
func SeedAdmin(db *gorm.DB) {
	if configs.AdminPassword == "" {
		return
	}
	var cnt int64
	if err := db.Model(&model.User{}).Count(&cnt).Error; err != nil || cnt > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("admin seed err: %v", err)
		return
	}
	admin := model.User{
		UserName:     configs.AdminUsername,
		UserPassword: string(hash),
		UserRole:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("admin seed err: %v", err)
		return
	}
	log.Printf("✅ Admin user %q seeded.", admin.UserName)
}

// -----------------------------------------
// Login (POST /auth/login)
// -----------------------------------------
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if configs.JWTSecret == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "login is disabled: JWT_SECRET not configured")
	}

	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrors := helper.ValidateStruct(in); fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	var user model.User
	if err := h.DB.WithContext(c.UserContext()).
		First(&user, "user_name = ?", in.UserName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return helper.TranslateError(c, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(in.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"name": user.UserName,
		"role": user.UserRole,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.TranslateError(c, err)
	}

	return helper.JsonOK(c, "login ok", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	})
}

// -----------------------------------------
// Me (GET /auth/me) — requires auth middleware
// -----------------------------------------
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing or invalid token")
	}

	var user model.User
	if err := h.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "user no longer exists")
		}
		return helper.TranslateError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(user))
}
