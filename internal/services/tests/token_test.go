package services_test

import (
	"testing"
	"time"

	"job-board-api/internal/models"
	"job-board-api/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	user := &models.User{
		ID:          uuid.New(),
		Email:       "jane@example.com",
		MobilePhone: "1234567890",
		Status:      models.StatusOnline,
		Role:        models.RoleCompanyHR,
	}

	token, err := services.IssueToken(user, testSecret, testExpiration)
	require.NoError(t, err)

	identity, err := services.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, user.MobilePhone, identity.Phone)
	assert.Equal(t, models.StatusOnline, identity.Status)
	assert.Equal(t, models.RoleCompanyHR, identity.Role)
}

func TestToken_Expired(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "jane@example.com", Role: models.RoleUser}

	token, err := services.IssueToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = services.ParseToken(token, testSecret)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "jane@example.com", Role: models.RoleUser}

	token, err := services.IssueToken(user, testSecret, testExpiration)
	require.NoError(t, err)

	_, err = services.ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestToken_Garbage(t *testing.T) {
	_, err := services.ParseToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
