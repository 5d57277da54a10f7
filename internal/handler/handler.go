package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/handler/dto"
	"github.com/stpnv0/Tourify/internal/storage"
	"github.com/stpnv0/Tourify/internal/wizard"
	"github.com/wb-go/wbf/ginext"
)

type WizardSvc interface {
	Open(ctx context.Context, organizerID, eventID string) (*domain.DraftSession, error)
	Get(ctx context.Context, sessionID string) (*domain.DraftSession, error)
	Next(ctx context.Context, sessionID string, form wizard.Form) (*domain.DraftSession, error)
	Back(ctx context.Context, sessionID string) (*domain.DraftSession, error)
	Submit(ctx context.Context, sessionID string, form wizard.Form) (*domain.Event, error)
	Close(ctx context.Context, sessionID string) error
}

type EventSvc interface {
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Delete(ctx context.Context, id, organizerID string) error
}

type AttendanceSvc interface {
	Attend(ctx context.Context, eventID, userID string, status domain.AttendanceStatus) (*domain.Attendance, error)
	Cancel(ctx context.Context, eventID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Attendance, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error)
}

type FeedSvc interface {
	CreatePost(ctx context.Context, input domain.CreatePostInput) (*domain.Post, error)
	EventPosts(ctx context.Context, eventID string) ([]*domain.Post, error)
	Feed(ctx context.Context, userID string, limit int) ([]*domain.Post, error)
	Like(ctx context.Context, postID, userID string) (int, error)
	Unlike(ctx context.Context, postID, userID string) (int, error)
	Comment(ctx context.Context, postID, authorID, content string) (*domain.Comment, error)
	Comments(ctx context.Context, postID string) ([]*domain.Comment, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	Suggested(ctx context.Context, userID string, limit int) ([]*domain.SuggestedUser, error)
}

type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (storage.Object, error)
	Remove(ctx context.Context, key string) error
}

type Handler struct {
	wizardService     WizardSvc
	eventService      EventSvc
	attendanceService AttendanceSvc
	feedService       FeedSvc
	userService       UserSvc
	uploader          Uploader
}

func NewHandler(
	wizardService WizardSvc,
	eventService EventSvc,
	attendanceService AttendanceSvc,
	feedService FeedSvc,
	userService UserSvc,
	uploader Uploader,
) *Handler {
	return &Handler{
		wizardService:     wizardService,
		eventService:      eventService,
		attendanceService: attendanceService,
		feedService:       feedService,
		userService:       userService,
		uploader:          uploader,
	}
}

// pathID достаёт uuid из пути. При ошибке ответ уже записан.
func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + " id"})
		return "", false
	}
	return id, true
}

func queryLimit(c *ginext.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
		return 0, false
	}
	return limit, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Fields: verr.Fields})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAttendanceNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrDraftNotFound),
		errors.Is(err, domain.ErrUploadNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableSpots),
		errors.Is(err, domain.ErrAlreadyAttending),
		errors.Is(err, domain.ErrAlreadyFollowing),
		errors.Is(err, domain.ErrNotFollowing),
		errors.Is(err, domain.ErrAlreadyLiked),
		errors.Is(err, domain.ErrNotLiked),
		errors.Is(err, domain.ErrDraftClosed),
		errors.Is(err, domain.ErrDraftAlreadyOpen),
		errors.Is(err, domain.ErrStepMismatch),
		errors.Is(err, domain.ErrNoPreviousStep),
		errors.Is(err, domain.ErrNotFinalStep):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
