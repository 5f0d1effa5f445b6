package dto

import (
	"github.com/google/uuid"

	"job-board-api/internal/models"
)

// SignupRequest defines the structure for creating a new account.
// userName is derived server-side from first and last name.
type SignupRequest struct {
	FirstName     string      `json:"firstName" validate:"required,max=100"`
	LastName      string      `json:"lastName" validate:"required,max=100"`
	Email         string      `json:"email" validate:"required,email"`
	RecoveryEmail string      `json:"recoveryEmail" validate:"omitempty,email"`
	Password      string      `json:"password" validate:"required,min=8,max=64"`
	MobilePhone   string      `json:"mobilePhone" validate:"required,min=7,max=15"`
	DOB           string      `json:"DOB" validate:"omitempty,datetime=2006-01-02"`
	Role          models.Role `json:"role" validate:"required,oneof=user companyHR"`
}

// SigninRequest accepts either the email or the mobile phone as the login
// identifier.
type SigninRequest struct {
	Email       string `json:"email" validate:"omitempty,email,required_without=MobilePhone"`
	MobilePhone string `json:"mobilePhone" validate:"omitempty,required_without=Email"`
	Password    string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the structure for a partial profile update.
// Role and password are deliberately absent: role is immutable and password
// changes go through UpdatePasswordRequest.
type UpdateUserRequest struct {
	ID            uuid.UUID `json:"-" validate:"required"`
	FirstName     *string   `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName      *string   `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	RecoveryEmail *string   `json:"recoveryEmail,omitempty" validate:"omitempty,email"`
	MobilePhone   *string   `json:"mobilePhone,omitempty" validate:"omitempty,min=7,max=15"`
	DOB           *string   `json:"DOB,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePasswordRequest defines the structure for changing the password of
// the authenticated user.
type UpdatePasswordRequest struct {
	UserID      uuid.UUID `json:"-" validate:"required"`
	OldPassword string    `json:"oldPassword" validate:"required"`
	NewPassword string    `json:"newPassword" validate:"required,min=8,max=64"`
}

// RequestOTPRequest asks for a recovery code to be mailed to the given
// recovery email.
type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest checks a previously issued recovery code.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// ResetPasswordRequest completes the OTP recovery flow. The code issued by
// RequestOTP must accompany the new password; the reset route is public.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=64"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
