// internal/app/app.go
package app

import (
	"job-board-api/config"
	"job-board-api/internal/files"
	"job-board-api/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate
	ResumeStore *files.ResumeStore

	UserService        services.UserService
	CompanyService     services.CompanyService
	JobService         services.JobService
	ApplicationService services.ApplicationService
}
