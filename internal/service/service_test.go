package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/repo"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/adservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/walletservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repo.New(mockDB, txManager), txManager, Options{
		HashService:          auth.NewMockHashServiceInterface(ctrl),
		JWTService:           auth.NewMockJWTServiceInterface(ctrl),
		Limiter:              adservice.NewMockLimiter(ctrl),
		TokenTTL:             time.Hour,
		VendorGrantCoins:     5000,
		AdCompletionCooldown: 5 * time.Second,
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PostService)
	assert.NotNil(t, services.CommentService)
	assert.NotNil(t, services.SaveService)
	assert.NotNil(t, services.ViewService)
	assert.NotNil(t, services.VendorService)
	assert.NotNil(t, services.AdService)
	assert.NotNil(t, services.FollowService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.StoryService)
	assert.IsType(t, &walletservice.Service{}, services.WalletService)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
