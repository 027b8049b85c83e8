package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bugtrack/bugtrack-api/internal/api/middleware"
	"github.com/bugtrack/bugtrack-api/internal/auth"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

// AuthHandler composes the authentication service with the token service:
// login verifies credentials first, then issues the token.
type AuthHandler struct {
	authService ports.AuthService
	tokens      *auth.TokenService
}

func NewAuthHandler(authService ports.AuthService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status  string `json:"status"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin developer"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Status:  "success",
		Token:   token,
		Message: "login successful",
	})
}

// Register creates a new user account. An admin role is granted only to the
// first registered admin or when the request carries an admin token (the
// route is behind OptionalAuth so claims may or may not be present).
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Failure      409   {object}  statusResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorRole, _ := c.Get(middleware.ContextRole).(string)

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		ActorRole: actorRole,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  "success",
		Message: "user registered",
	})
}

type meResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Me returns the identity resolved by the access gate.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  statusResponse
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	username, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Username: username, Role: role})
}
