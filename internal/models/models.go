package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleUser      Role = "user"
	RoleCompanyHR Role = "companyHR"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleUser, RoleCompanyHR:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- User Status Enum ---
type UserStatus string

const (
	StatusOnline  UserStatus = "online"
	StatusOffline UserStatus = "offline"
)

// Scan implements the sql.Scanner interface for UserStatus
func (s *UserStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan UserStatus: value is not string or []byte")
		}
	}
	v := UserStatus(strVal)
	switch v {
	case StatusOnline, StatusOffline:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid UserStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for UserStatus
func (s UserStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Job Location Enum ---
type JobLocation string

const (
	LocationOnsite   JobLocation = "onsite"
	LocationRemotely JobLocation = "remotely"
	LocationHybrid   JobLocation = "hybrid"
)

// Scan implements the sql.Scanner interface for JobLocation
func (l *JobLocation) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobLocation: value is not string or []byte")
		}
	}
	v := JobLocation(strVal)
	switch v {
	case LocationOnsite, LocationRemotely, LocationHybrid:
		*l = v
		return nil
	default:
		return fmt.Errorf("invalid JobLocation value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobLocation
func (l JobLocation) Value() (driver.Value, error) {
	return string(l), nil
}

// --- Working Time Enum ---
type WorkingTime string

const (
	WorkingPartTime WorkingTime = "part-time"
	WorkingFullTime WorkingTime = "full-time"
)

// Scan implements the sql.Scanner interface for WorkingTime
func (w *WorkingTime) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan WorkingTime: value is not string or []byte")
		}
	}
	v := WorkingTime(strVal)
	switch v {
	case WorkingPartTime, WorkingFullTime:
		*w = v
		return nil
	default:
		return fmt.Errorf("invalid WorkingTime value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for WorkingTime
func (w WorkingTime) Value() (driver.Value, error) {
	return string(w), nil
}

// --- Seniority Level Enum ---
type SeniorityLevel string

const (
	SeniorityJunior   SeniorityLevel = "Junior"
	SeniorityMidLevel SeniorityLevel = "Mid-Level"
	SenioritySenior   SeniorityLevel = "Senior"
	SeniorityTeamLead SeniorityLevel = "Team-Lead"
	SeniorityCTO      SeniorityLevel = "CTO"
)

// Scan implements the sql.Scanner interface for SeniorityLevel
func (s *SeniorityLevel) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan SeniorityLevel: value is not string or []byte")
		}
	}
	v := SeniorityLevel(strVal)
	switch v {
	case SeniorityJunior, SeniorityMidLevel, SenioritySenior, SeniorityTeamLead, SeniorityCTO:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid SeniorityLevel value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for SeniorityLevel
func (s SeniorityLevel) Value() (driver.Value, error) {
	return string(s), nil
}

// User represents an account in the system. The password hash and OTP state
// are never serialized to clients.
type User struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	FirstName     string     `json:"firstName" db:"first_name"`
	LastName      string     `json:"lastName" db:"last_name"`
	UserName      string     `json:"userName" db:"user_name"` // firstName + " " + lastName, derived at signup
	Email         string     `json:"email" db:"email"`
	RecoveryEmail string     `json:"recoveryEmail,omitempty" db:"recovery_email"`
	MobilePhone   string     `json:"mobilePhone" db:"mobile_phone"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	DateOfBirth   *time.Time `json:"DOB,omitempty" db:"date_of_birth"`
	Role          Role       `json:"role" db:"role"`
	Status        UserStatus `json:"status" db:"status"`
	OTPCode       *string    `json:"-" db:"otp_code"`
	OTPExpiresAt  *time.Time `json:"-" db:"otp_expires_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Company is owned by exactly one companyHR user. Mutations are authorized
// only to that owner.
type Company struct {
	ID                uuid.UUID `json:"id" db:"id"`
	CompanyName       string    `json:"companyName" db:"company_name"`
	Description       string    `json:"description" db:"description"`
	Industry          string    `json:"industry" db:"industry"`
	Address           string    `json:"address" db:"address"`
	NumberOfEmployees int       `json:"numberOfEmployees" db:"number_of_employees"`
	CompanyEmail      string    `json:"companyEmail" db:"company_email"`
	CompanyHR         uuid.UUID `json:"companyHR" db:"company_hr"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// CompanySummary is the reduced company view attached to company job listings.
type CompanySummary struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"companyName"`
	CompanyEmail string    `json:"companyEmail"`
}

// Job is a posting owned by a Company and attributed to the HR user who
// created it.
type Job struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	JobTitle        string          `json:"jobTitle" db:"job_title"`
	JobLocation     JobLocation     `json:"jobLocation" db:"job_location"`
	WorkingTime     WorkingTime     `json:"workingTime" db:"working_time"`
	SeniorityLevel  SeniorityLevel  `json:"seniorityLevel" db:"seniority_level"`
	JobDescription  string          `json:"jobDescription" db:"job_description"`
	TechnicalSkills string          `json:"technicalSkills" db:"technical_skills"`
	SoftSkills      string          `json:"softSkills" db:"soft_skills"`
	AddedBy         uuid.UUID       `json:"addedBy" db:"added_by"`
	CompanyID       uuid.UUID       `json:"company" db:"company_id"`
	CompanyInfo     *Company        `json:"companyInfo,omitempty" db:"-"`
	CompanyBrief    *CompanySummary `json:"companyBrief,omitempty" db:"-"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// ApplicantSummary is the reduced applicant contact view exposed to company
// owners when listing applications.
type ApplicantSummary struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"userName"`
	MobilePhone string    `json:"mobilePhone"`
	Email       string    `json:"email"`
}

// Application links one User to one Job with a snapshot of the declared
// skills at apply time. Immutable after creation.
type Application struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	JobID          uuid.UUID         `json:"jobId" db:"job_id"`
	UserID         uuid.UUID         `json:"userId" db:"user_id"`
	UserTechSkills []string          `json:"userTechSkills" db:"user_tech_skills"`
	UserSoftSkills []string          `json:"userSoftSkills" db:"user_soft_skills"`
	ResumePath     *string           `json:"resume,omitempty" db:"resume_path"`
	Applicant      *ApplicantSummary `json:"applicant,omitempty" db:"-"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}
