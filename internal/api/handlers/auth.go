package handlers

import (
	"log"
	"net/http"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AuthHandler holds dependencies for account and credential operations.
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validate,
	}
}

// Signup godoc
//	@Summary		Register a new account
//	@Description	Creates a user or companyHR account. Email and mobile phone must both be unused.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.SignupRequest	true	"Account to create"
//	@Success		201		{object}	map[string]interface{}	"Account created"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		409		{object}	map[string]string	"Conflict - Email or phone already registered"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Signup")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Success", "user": user})
}

// Signin godoc
//	@Summary		Sign in
//	@Description	Authenticates by email or mobile phone plus password and returns a token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.SigninRequest	true	"Login credentials"
//	@Success		200			{object}	map[string]interface{}	"Signed in"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string	"Unauthorized - Wrong credentials"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, accessToken, refreshToken, err := h.service.Signin(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Signin")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Success",
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Refresh godoc
//	@Summary		Refresh tokens
//	@Description	Exchanges a valid refresh token for a new token pair. The old refresh token is revoked.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	map[string]interface{}	"New token pair"
//	@Failure		401		{object}	map[string]string	"Unauthorized - Unknown or expired refresh token"
//	@Router			/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	accessToken, refreshToken, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Refresh")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Success",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Logout godoc
//	@Summary		Log out
//	@Description	Revokes the refresh token and marks the account offline.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.LogoutRequest	true	"Refresh token to revoke"
//	@Success		200		{object}	map[string]string	"Logged out"
//	@Failure		401		{object}	map[string]string	"Unauthorized - Unknown refresh token"
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "Logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}

// GetProfile godoc
//	@Summary		Get own profile
//	@Description	Returns the full account data of the authenticated user.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Profile"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Account no longer exists"
//	@Router			/auth/profile [get]
//	@Security		BearerAuth
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("GetProfile: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), identity.ID)
	if err != nil {
		respondServiceError(c, err, "GetProfile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "user": user})
}

// GetProfileByID godoc
//	@Summary		Get another account's profile
//	@Description	Returns the public profile of the account with the given ID.
//	@Tags			auth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"	Format(uuid)
//	@Success		200	{object}	map[string]interface{}	"Profile"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"User not found"
//	@Router			/auth/profile/{id} [get]
//	@Security		BearerAuth
func (h *AuthHandler) GetProfileByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "GetProfileByID")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "user": user})
}

// UpdateAccount godoc
//	@Summary		Update own account
//	@Description	Partially updates the authenticated account. Role and password cannot be changed here.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	map[string]interface{}	"Updated account"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		409		{object}	map[string]string	"Conflict - Email or phone already registered"
//	@Router			/auth/update [patch]
//	@Security		BearerAuth
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("UpdateAccount: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = identity.ID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdateAccount")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "user": user})
}

// DeleteAccount godoc
//	@Summary		Delete own account
//	@Description	Permanently deletes the authenticated account and its owned data.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Account deleted"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Account no longer exists"
//	@Router			/auth/delete [delete]
//	@Security		BearerAuth
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("DeleteAccount: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity.ID); err != nil {
		respondServiceError(c, err, "DeleteAccount")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}

// UpdatePassword godoc
//	@Summary		Change password
//	@Description	Changes the authenticated account's password after verifying the current one.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			passwords	body		dto.UpdatePasswordRequest	true	"Current and new password"
//	@Success		200			{object}	map[string]interface{}	"Password changed"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string	"Unauthorized - Wrong current password"
//	@Router			/auth/password [patch]
//	@Security		BearerAuth
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("UpdatePassword: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = identity.ID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.UpdatePassword(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "UpdatePassword")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "user": user})
}

// ListByRecoveryEmail godoc
//	@Summary		List accounts by recovery email
//	@Description	Returns all accounts registered with the given recovery email. HR only.
//	@Tags			auth
//	@Produce		json
//	@Param			recoveryEmail	path		string	true	"Recovery email"
//	@Success		200				{object}	map[string]interface{}	"Matching accounts"
//	@Failure		401				{object}	map[string]string	"Unauthorized"
//	@Failure		403				{object}	map[string]string	"Forbidden - Not an HR account"
//	@Router			/auth/recovery/{recoveryEmail} [get]
//	@Security		BearerAuth
func (h *AuthHandler) ListByRecoveryEmail(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		log.Printf("ListByRecoveryEmail: Error getting identity from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recoveryEmail := c.Param("recoveryEmail")
	users, err := h.service.ListByRecoveryEmail(c.Request.Context(), identity, recoveryEmail)
	if err != nil {
		respondServiceError(c, err, "ListByRecoveryEmail")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "users": users})
}

// RequestOTP godoc
//	@Summary		Request a recovery OTP
//	@Description	Generates a 6-digit code and mails it to the account's recovery email.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			email	body		dto.RequestOTPRequest	true	"Recovery email"
//	@Success		200		{object}	map[string]string	"OTP dispatched"
//	@Failure		404		{object}	map[string]string	"No account with that recovery email"
//	@Router			/auth/request-otp [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.RequestOTP(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "RequestOTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}

// VerifyOTP godoc
//	@Summary		Verify a recovery OTP
//	@Description	Checks the code without consuming it; reset-password completes the flow.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			otp	body		dto.VerifyOTPRequest	true	"Email and code"
//	@Success		200	{object}	map[string]interface{}	"Code accepted"
//	@Failure		400	{object}	map[string]string	"Invalid or expired OTP"
//	@Router			/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.VerifyOTP(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "VerifyOTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "user": user})
}

// ResetPassword godoc
//	@Summary		Reset password
//	@Description	Sets a new password for the account after checking the issued OTP, then clears the OTP.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			reset	body		dto.ResetPasswordRequest	true	"Email, OTP and new password"
//	@Success		200		{object}	map[string]interface{}	"Password reset"
//	@Failure		400		{object}	map[string]string	"Invalid or expired OTP"
//	@Failure		404		{object}	map[string]string	"User not found"
//	@Router			/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.ResetPassword(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "ResetPassword")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Success", "user": user})
}
