package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	return NewUserService(repo, notifier, newTestLogger(t)), repo, notifier
}

func TestUserService_Create_Success(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "  bluenote  "})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "bluenote", user.Username)
	assert.Equal(t, "bluenote", user.DisplayName)
	assert.Equal(t, domain.UserRoleFan, user.Role)
}

func TestUserService_Create_Venue(t *testing.T) {
	svc, repo, _ := newUserService(t)

	chatID := int64(42)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username:       "bluenote",
		DisplayName:    "Blue Note",
		Role:           domain.UserRoleVenue,
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Blue Note", user.DisplayName)
	assert.Equal(t, domain.UserRoleVenue, user.Role)
	require.NotNil(t, user.TelegramChatID)
	assert.Equal(t, int64(42), *user.TelegramChatID)
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"empty username", domain.CreateUserInput{Username: "   "}},
		{"unknown role", domain.CreateUserInput{Username: "bob", Role: "promoter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newUserService(t)

			_, err := svc.Create(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "bluenote"})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_GetByID(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)

	user, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_List(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}, {ID: "u2"}}, nil)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_Follow_Success(t *testing.T) {
	svc, repo, notifier := newUserService(t)

	alice := &domain.User{ID: "u1", Username: "alice"}
	band := &domain.User{ID: "u2", Username: "band", Role: domain.UserRoleArtist}

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(alice, nil)
	repo.EXPECT().GetByID(mock.Anything, "u2").Return(band, nil)
	repo.EXPECT().Follow(mock.Anything, "u1", "u2").Return(nil)
	notifier.EXPECT().NotifyNewFollower(mock.Anything, band, alice).Return()

	err := svc.Follow(context.Background(), "u1", "u2")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestUserService_Follow_Self(t *testing.T) {
	svc, _, _ := newUserService(t)

	err := svc.Follow(context.Background(), "u1", "u1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Follow_AlreadyFollowing(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	repo.EXPECT().Follow(mock.Anything, "u1", "u2").Return(domain.ErrAlreadyFollowing)

	err := svc.Follow(context.Background(), "u1", "u2")

	assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)
}

func TestUserService_Follow_FolloweeNotFound(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	err := svc.Follow(context.Background(), "u1", "ghost")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Unfollow(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repo.EXPECT().Unfollow(mock.Anything, "u1", "u2").Return(domain.ErrNotFollowing)

	err := svc.Unfollow(context.Background(), "u1", "u2")

	assert.ErrorIs(t, err, domain.ErrNotFollowing)
}

func TestUserService_Suggested_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, 10},
		{"negative", -3, 10},
		{"custom", 5, 5},
		{"capped", 500, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newUserService(t)

			repo.EXPECT().Suggested(mock.Anything, "u1", tt.want).Return([]*domain.SuggestedUser{}, nil)

			_, err := svc.Suggested(context.Background(), "u1", tt.limit)

			require.NoError(t, err)
		})
	}
}

func TestUserService_Suggested_RepoError(t *testing.T) {
	svc, repo, _ := newUserService(t)

	repoErr := errors.New("db error")
	repo.EXPECT().Suggested(mock.Anything, "u1", 10).Return(nil, repoErr)

	_, err := svc.Suggested(context.Background(), "u1", 0)

	assert.ErrorIs(t, err, repoErr)
}
