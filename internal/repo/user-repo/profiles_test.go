package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

var profileColumns = []string{"id", "email", "username", "full_name", "role", "bio", "avatar_url", "phone",
	"followers_count", "following_count", "posts_count", "created_at"}

func TestRepository_FindProfile(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name: "Profile found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`(SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id) AS posts_count, u.created_at FROM users u WHERE u.id = $1`)).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(profileColumns).
						AddRow(userID, "a@bsmart.app", "alice", "Alice", "member", "hi", "a.png", "", int64(2), int64(1), int64(5), now))
			},
			result: &domain.Profile{
				ID: userID, Email: "a@bsmart.app", Username: "alice", FullName: "Alice", Role: "member", Bio: "hi",
				AvatarURL: "a.png", FollowersCount: 2, FollowingCount: 1, PostsCount: 5, CreatedAt: now,
			},
		},
		{
			name: "Profile not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users u WHERE u.id = $1`)).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM users u WHERE u.id = $1`)).
					WithArgs(userID).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindProfile(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListProfiles(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users u ORDER BY u.created_at DESC LIMIT $1 OFFSET $2`)).
		WithArgs(20, 40).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(uuid.New(), "b@bsmart.app", "bob", "", "member", "", "", "", int64(0), int64(0), int64(0), now).
			AddRow(uuid.New(), "a@bsmart.app", "alice", "", "vendor", "", "", "", int64(1), int64(0), int64(3), now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

	profiles, err := repo.ListProfiles(context.Background(), 20, 40)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "bob", profiles[0].Username)
	assert.Equal(t, int64(3), profiles[1].PostsCount)

	total, err := repo.CountUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()
	username := "alice2"
	bio := "new bio"
	upd := domain.ProfileUpdate{Username: &username, Bio: &bio}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		unique    bool
		nilResult bool
	}{
		{
			name: "Only given fields change",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET username = COALESCE($2, username)`)).
					WithArgs(userID, upd.Username, upd.FullName, upd.Bio, upd.AvatarURL, upd.Phone).
					WillReturnRows(pgxmock.NewRows(profileColumns).
						AddRow(userID, "a@bsmart.app", "alice2", "Alice", "member", "new bio", "", "", int64(0), int64(0), int64(0), now))
			},
		},
		{
			name: "Username taken",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users`)).
					WithArgs(userID, upd.Username, upd.FullName, upd.Bio, upd.AvatarURL, upd.Phone).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: true,
			unique:    true,
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users`)).
					WithArgs(userID, upd.Username, upd.FullName, upd.Bio, upd.AvatarURL, upd.Phone).
					WillReturnError(pgx.ErrNoRows)
			},
			nilResult: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateProfile(context.Background(), userID, upd)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Equal(t, tt.unique, pg.IsUniqueViolation(err))
				return
			}
			assert.NoError(t, err)
			if tt.nilResult {
				assert.Nil(t, result)
				return
			}
			assert.Equal(t, "alice2", result.Username)
			assert.Equal(t, "new bio", result.Bio)
			assert.Equal(t, "Alice", result.FullName)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementFollowCounts(t *testing.T) {
	repo, mock := NewMock(t)
	followerID := uuid.New()
	followedID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT a.following_count, b.followers_count FROM a, b`)).
		WithArgs(followerID, followedID, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"following_count", "followers_count"}).AddRow(int64(3), int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT a.following_count, b.followers_count FROM a, b`)).
		WithArgs(followerID, followedID, int64(-1)).
		WillReturnError(errors.New("db error"))

	following, followers, err := repo.IncrementFollowCounts(context.Background(), followerID, followedID, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), following)
	assert.Equal(t, int64(8), followers)

	_, _, err = repo.IncrementFollowCounts(context.Background(), followerID, followedID, -1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
