package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"job-board-api/internal/mailer"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const otpValidity = 10 * time.Minute

type userService struct {
	repo              storage.UserRepository
	tokens            TokenStore
	mail              mailer.Mailer
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens TokenStore, mail mailer.Mailer,
	jwtSecret string, jwtExpiration, refreshExpiration time.Duration) UserService {
	return &userService{
		repo:              repo,
		tokens:            tokens,
		mail:              mail,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

// generateOTP returns a 6-digit recovery code uniform in [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *userService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password for email %s: %v", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		UserName:      req.FirstName + " " + req.LastName,
		Email:         req.Email,
		RecoveryEmail: req.RecoveryEmail,
		MobilePhone:   req.MobilePhone,
		PasswordHash:  string(hashedPassword),
		Role:          req.Role,
		Status:        models.StatusOffline,
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date of birth", ErrValidation)
		}
		user.DateOfBirth = &dob
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: email or mobile phone already exists", ErrConflict)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return created, nil
}

func (s *userService) Signin(ctx context.Context, req *dto.SigninRequest) (*models.User, string, string, error) {
	user, err := s.repo.GetByLogin(ctx, req.Email, req.MobilePhone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Signin attempt failed: user not found")
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user during signin: %v", err)
		return nil, "", "", fmt.Errorf("internal error during signin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Signin attempt failed for user %s: invalid password", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	user, err = s.repo.SetStatus(ctx, user.ID, models.StatusOnline)
	if err != nil {
		log.Printf("Error setting user %s online: %v", user.ID, err)
		return nil, "", "", fmt.Errorf("internal error during signin: %w", err)
	}

	accessToken, err := IssueToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("Error generating access token for user %s: %v", user.ID, err)
		return nil, "", "", fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.tokens.Save(ctx, refreshToken, user.ID, s.refreshExpiration); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.ID, err)
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	userID, err := s.tokens.Lookup(ctx, req.RefreshToken)
	if err != nil {
		return "", "", err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", mapRepoError(err, "fetching user for token refresh")
	}

	// Rotate: the old refresh token is single-use.
	if err := s.tokens.Revoke(ctx, req.RefreshToken); err != nil {
		log.Printf("Error revoking rotated refresh token: %v", err)
		return "", "", err
	}

	accessToken, err := IssueToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.tokens.Save(ctx, refreshToken, user.ID, s.refreshExpiration); err != nil {
		log.Printf("Error storing rotated refresh token for user %s: %v", user.ID, err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	userID, err := s.tokens.Lookup(ctx, req.RefreshToken)
	if err != nil {
		return err
	}

	if err := s.tokens.Revoke(ctx, req.RefreshToken); err != nil {
		log.Printf("Error revoking refresh token during logout: %v", err)
		return err
	}

	if _, err := s.repo.SetStatus(ctx, userID, models.StatusOffline); err != nil {
		log.Printf("Error setting user %s offline on logout: %v", userID, err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching user profile")
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: email or mobile phone already exists", ErrConflict)
		}
		return nil, mapRepoError(err, "updating user profile")
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting user")
	}
	return nil
}

func (s *userService) UpdatePassword(ctx context.Context, req *dto.UpdatePasswordRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "fetching user for password update")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		log.Printf("Password update failed for user %s: incorrect current password", req.UserID)
		return nil, fmt.Errorf("%w: incorrect password", ErrInvalidCredentials)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.repo.UpdatePassword(ctx, req.UserID, string(hashed))
	if err != nil {
		return nil, mapRepoError(err, "updating password")
	}
	return updated, nil
}

func (s *userService) ListByRecoveryEmail(ctx context.Context, identity Identity, recoveryEmail string) ([]models.User, error) {
	if err := RequireRole(identity, models.RoleCompanyHR); err != nil {
		return nil, err
	}

	users, err := s.repo.ListByRecoveryEmail(ctx, recoveryEmail)
	if err != nil {
		return nil, mapRepoError(err, "listing users by recovery email")
	}
	return users, nil
}

func (s *userService) RequestOTP(ctx context.Context, req *dto.RequestOTPRequest) error {
	user, err := s.repo.GetByRecoveryEmail(ctx, req.Email)
	if err != nil {
		return mapRepoError(err, "looking up recovery email")
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(otpValidity)
	if err := s.repo.SetOTP(ctx, user.ID, code, expiresAt); err != nil {
		return mapRepoError(err, "storing OTP")
	}

	// Best-effort delivery; a failed send does not fail the request.
	go func(to, code string) {
		if err := s.mail.SendOTP(to, code); err != nil {
			log.Printf("UserService: OTP mail delivery failed: %v", err)
		}
	}(req.Email, code)

	return nil
}

// VerifyOTP checks the code without consuming it; the code is cleared only
// when the reset completes.
func (s *userService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, mapRepoError(err, "fetching user for OTP verification")
	}

	if user.OTPCode == nil || user.OTPExpiresAt == nil {
		return nil, ErrInvalidOTP
	}
	if *user.OTPCode != req.OTP {
		log.Printf("OTP verification failed for user %s: code mismatch", user.ID)
		return nil, ErrInvalidOTP
	}
	if time.Now().After(*user.OTPExpiresAt) {
		log.Printf("OTP verification failed for user %s: code expired", user.ID)
		return nil, ErrInvalidOTP
	}

	return user, nil
}

// ResetPassword is reachable without a session, so the caller must present
// the OTP issued for the account before the new hash is written.
func (s *userService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*models.User, error) {
	if _, err := s.VerifyOTP(ctx, &dto.VerifyOTPRequest{Email: req.Email, OTP: req.OTP}); err != nil {
		log.Printf("ResetPassword: OTP check failed for %s", req.Email)
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.ResetPassword(ctx, req.Email, string(hashed))
	if err != nil {
		return nil, mapRepoError(err, "resetting password")
	}
	return user, nil
}
