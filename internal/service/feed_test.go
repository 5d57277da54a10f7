package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFeedService(t *testing.T) (*FeedService, *mocks.MockPostRepo, *mocks.MockEventRepo) {
	t.Helper()
	postRepo := mocks.NewMockPostRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	return NewFeedService(postRepo, eventRepo, newTestLogger(t)), postRepo, eventRepo
}

func TestFeedService_CreatePost_Success(t *testing.T) {
	svc, postRepo, eventRepo := newFeedService(t)

	eventID := "e1"
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(&domain.Event{ID: eventID}, nil)
	postRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	post, err := svc.CreatePost(context.Background(), domain.CreatePostInput{
		AuthorID: "u1",
		EventID:  &eventID,
		Content:  "  Doors open at 7!  ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Doors open at 7!", post.Content)
	assert.Equal(t, &eventID, post.EventID)
}

func TestFeedService_CreatePost_WithoutEvent(t *testing.T) {
	svc, postRepo, _ := newFeedService(t)

	postRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	post, err := svc.CreatePost(context.Background(), domain.CreatePostInput{AuthorID: "u1", Content: "hello"})

	require.NoError(t, err)
	assert.Nil(t, post.EventID)
}

func TestFeedService_CreatePost_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "   "},
		{"too long", strings.Repeat("a", 2001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newFeedService(t)

			_, err := svc.CreatePost(context.Background(), domain.CreatePostInput{AuthorID: "u1", Content: tt.content})

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestFeedService_CreatePost_EventNotFound(t *testing.T) {
	svc, _, eventRepo := newFeedService(t)

	eventID := "missing"
	eventRepo.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	_, err := svc.CreatePost(context.Background(), domain.CreatePostInput{AuthorID: "u1", EventID: &eventID, Content: "hi"})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestFeedService_Feed_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, 20},
		{"custom", 7, 7},
		{"capped", 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, postRepo, _ := newFeedService(t)

			postRepo.EXPECT().Feed(mock.Anything, "u1", tt.want).Return([]*domain.Post{}, nil)

			_, err := svc.Feed(context.Background(), "u1", tt.limit)

			require.NoError(t, err)
		})
	}
}

func TestFeedService_Like(t *testing.T) {
	svc, postRepo, _ := newFeedService(t)

	postRepo.EXPECT().Like(mock.Anything, "p1", "u1").Return(3, nil)

	count, err := svc.Like(context.Background(), "p1", "u1")

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestFeedService_Like_Twice(t *testing.T) {
	svc, postRepo, _ := newFeedService(t)

	postRepo.EXPECT().Like(mock.Anything, "p1", "u1").Return(0, domain.ErrAlreadyLiked)

	_, err := svc.Like(context.Background(), "p1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)
}

func TestFeedService_Unlike(t *testing.T) {
	svc, postRepo, _ := newFeedService(t)

	postRepo.EXPECT().Unlike(mock.Anything, "p1", "u1").Return(2, nil)

	count, err := svc.Unlike(context.Background(), "p1", "u1")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFeedService_Comment(t *testing.T) {
	svc, postRepo, _ := newFeedService(t)

	postRepo.EXPECT().AddComment(mock.Anything, mock.Anything).Return(nil)

	comment, err := svc.Comment(context.Background(), "p1", "u1", " see you there ")

	require.NoError(t, err)
	assert.Equal(t, "p1", comment.PostID)
	assert.Equal(t, "see you there", comment.Content)
}

func TestFeedService_Comment_Empty(t *testing.T) {
	svc, _, _ := newFeedService(t)

	_, err := svc.Comment(context.Background(), "p1", "u1", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFeedService_Comments_PostNotFound(t *testing.T) {
	svc, postRepo, _ := newFeedService(t)

	postRepo.EXPECT().GetByID(mock.Anything, "p1").Return(nil, domain.ErrPostNotFound)

	_, err := svc.Comments(context.Background(), "p1")

	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}
