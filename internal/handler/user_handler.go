package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"authsvc/internal/auth"
	apperrors "authsvc/internal/errors"
	"authsvc/internal/service"
)

// UserHandler serves authenticated user endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims := tokenClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.ErrTokenInvalid.Error(),
			Code:  "TOKEN_INVALID",
		})
	}

	user, err := h.svc.GetUser(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "USER_NOT_FOUND",
			})
		}
		c.Logger().Errorf("me: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "BAD_REQUEST",
		})
	}

	user, err := h.svc.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "USER_NOT_FOUND",
			})
		}
		c.Logger().Errorf("get user: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusOK, user)
}

// tokenClaims extracts the verified claims placed on the context by the JWT
// middleware. Returns nil if the route is not guarded or the shape is off.
func tokenClaims(c echo.Context) *auth.Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
