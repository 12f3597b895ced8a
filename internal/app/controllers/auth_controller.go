// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/app/services"
	"github.com/edubase/studenthub/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService  *services.AuthService
	oauthService *services.OAuthService
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, oauthService *services.OAuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		oauthService: oauthService,
		logger:       logger,
	}
}

// Register handles local student registration
// @Summary Register a new student
// @Description Creates a student account with email and password and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// Login handles local student login
// @Summary Student login
// @Description Authenticates a student with email and password and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GoogleLogin handles Google Sign-In
// @Summary Google sign-in
// @Description Verifies a Google ID token and signs the student in, provisioning an account on first sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleLoginRequest true "Google ID token and optional batch for first sign-in"
// @Success 200 {object} dto.APIResponse{data=dto.OAuthLoginResponse} "Returning student signed in"
// @Success 201 {object} dto.APIResponse{data=dto.OAuthLoginResponse} "New student provisioned"
// @Failure 400 {object} dto.ErrorResponse "Unverified email or missing batch"
// @Failure 401 {object} dto.ErrorResponse "Token verification failed"
// @Failure 409 {object} dto.ErrorResponse "Email belongs to another sign-in method"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/google-login [post]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid Google login request payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.oauthService.GoogleLogin(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Google login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(oauthStatus(resp), dto.NewAPIResponse(resp))
}

// AppleLogin handles Sign in with Apple
// @Summary Apple sign-in
// @Description Verifies an Apple identity token and signs the student in, provisioning an account on first sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AppleLoginRequest true "Apple identity token, optional one-time user data and batch"
// @Success 200 {object} dto.APIResponse{data=dto.OAuthLoginResponse} "Returning student signed in"
// @Success 201 {object} dto.APIResponse{data=dto.OAuthLoginResponse} "New student provisioned"
// @Failure 400 {object} dto.ErrorResponse "Missing email or batch"
// @Failure 401 {object} dto.ErrorResponse "Token verification failed"
// @Failure 409 {object} dto.ErrorResponse "Email belongs to another sign-in method"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/apple-login [post]
func (c *AuthController) AppleLogin(ctx *gin.Context) {
	var req dto.AppleLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid Apple login request payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.oauthService.AppleLogin(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Apple login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(oauthStatus(resp), dto.NewAPIResponse(resp))
}

// Me returns the profile of the authenticated student
// @Summary Current student profile
// @Description Returns the student behind the presented session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Current student"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Student no longer exists"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	studentID, ok := middleware.StudentIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.authService.GetCurrentStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// oauthStatus picks 201 for first sign-ins and 200 for returning students
func oauthStatus(resp *dto.OAuthLoginResponse) int {
	if resp.IsNewUser {
		return http.StatusCreated
	}
	return http.StatusOK
}
