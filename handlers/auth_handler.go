package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/paseto"
	"github.com/Sujal2120/DailyFlow/pkg/password"
	util "github.com/Sujal2120/DailyFlow/pkg/utils"
	"github.com/Sujal2120/DailyFlow/repository"
)

type AuthHandler struct {
	userRepo  *repository.UserRepository
	notifRepo *repository.NotificationRepository
	maker     *paseto.Maker
}

func NewAuthHandler(userRepo *repository.UserRepository, notifRepo *repository.NotificationRepository, maker *paseto.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo:  userRepo,
		notifRepo: notifRepo,
		maker:     maker,
	}
}

// Register godoc
// @Summary Register a new employee (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.UserRegisterPayload true "Registration data"
// @Success 201 {object} object{message=string,user_id=string}
// @Failure 400 {object} object{errors=array}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	newUser := &models.User{
		Name:       payload.Name,
		Email:      payload.Email,
		Password:   hashedPassword,
		Role:       payload.Role,
		Department: payload.Department,
		Phone:      payload.Phone,
		Address:    payload.Address,
		Salary:     payload.Salary,
	}

	userID, err := h.userRepo.Create(newUser)
	if err != nil {
		if err == repository.ErrEmailTaken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to register user: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": userID,
	})
}

// Login godoc
// @Summary Log in and receive a PASETO token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} object{message=string,token=string,user=models.User}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	user, err := h.userRepo.FindByEmail(payload.Email)
	if err != nil || !password.CheckPasswordHash(payload.Password, user.Password) {
		// No session yet, so this lands in the toast queue only.
		h.notifRepo.Publish("", "Invalid credentials. Try sujal@dayflow.com", models.ToastError)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email and password combination"})
	}

	token, err := h.maker.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}

	h.notifRepo.Publish(user.ID, fmt.Sprintf("Welcome back, %s!", user.Name), models.ToastSuccess)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// ChangePassword godoc
// @Summary Change the password of the logged-in user
// @Tags Auth
// @Security BearerAuth
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	user, err := h.userRepo.FindByID(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "user not found"})
	}

	if !password.CheckPasswordHash(payload.OldPassword, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Old password does not match"})
	}

	if payload.NewPassword == payload.OldPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "New password must differ from the old one"})
	}

	newHashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash new password"})
	}

	if err := h.userRepo.UpdatePassword(claims.UserID, newHashedPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to update password: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password changed successfully."})
}

// Logout is informational: tokens are stateless, so the client simply
// discards its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(*paseto.Claims); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout successful. Please discard the token on the client side.",
	})
}
