package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"authsvc/internal/auth"
	apperrors "authsvc/internal/errors"
	"authsvc/internal/model"
	"authsvc/internal/service"
)

// TokenCookieName is the cookie carrying the session token for browser clients.
const TokenCookieName = "auth_token"

// AuthHandler handles signup and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string          `json:"token"`
	User  *model.AuthUser `json:"user"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "BAD_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_FAILED",
			Details: validationDetails(err),
		})
	}

	user, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusConflict, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "EMAIL_EXISTS",
			})
		}
		c.Logger().Errorf("signup: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user created successfully",
		"user":    user.AuthUser(),
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "BAD_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_FAILED",
			Details: validationDetails(err),
		})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password share one response.
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		c.Logger().Errorf("login: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenLifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
}

// validationDetails flattens validator errors into the per-field list the
// signup contract promises.
func validationDetails(err error) []apperrors.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	details := make([]apperrors.FieldError, 0, len(ve))
	for _, fe := range ve {
		details = append(details, apperrors.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
