package handler

import (
	"github.com/deppfellow/storefront-api/internal/response"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/deppfellow/storefront-api/internal/service"
	"github.com/deppfellow/storefront-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

func NewForgotPasswordRequest() *ForgotPasswordRequest { return &ForgotPasswordRequest{} }

func (r *ForgotPasswordRequest) Validate() error        { return validation.Struct(r) }
func (r *ForgotPasswordRequest) FailureMessage() string { return "Email is required" }

func (r *ForgotPasswordRequest) LogIdentifier() (string, string) { return "email", r.Email }

type MeRequest struct {
	UserID string `query:"userId" validate:"required"`
}

func NewMeRequest() *MeRequest { return &MeRequest{} }

func (r *MeRequest) Validate() error        { return validation.Struct(r) }
func (r *MeRequest) FailureMessage() string { return "User ID is required" }

func (r *MeRequest) LogIdentifier() (string, string) { return "user_id", r.UserID }

// AuthHandler serves the authentication endpoints. Neither issues tokens.
type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

// ForgotPassword answers every valid request with the same message,
// whether or not the email belongs to an account.
func (h *AuthHandler) ForgotPassword(c echo.Context, req *ForgotPasswordRequest) (response.Success, error) {
	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return response.Success{}, err
	}

	return response.WithMessage(service.PasswordResetMessage), nil
}

// Me returns the public profile of the user named by the userId query parameter.
func (h *AuthHandler) Me(c echo.Context, req *MeRequest) (response.Success, error) {
	profile, err := h.authService.CurrentUser(c.Request().Context(), req.UserID)
	if err != nil {
		return response.Success{}, err
	}

	return response.OK(profile), nil
}

