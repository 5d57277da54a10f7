package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/handler/dto"
	hmocks "github.com/stpnv0/Tourify/internal/handler/mocks"
	"github.com/stpnv0/Tourify/internal/storage"
	"github.com/stpnv0/Tourify/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testEnv struct {
	wizardSvc     *hmocks.MockWizardSvc
	eventSvc      *hmocks.MockEventSvc
	attendanceSvc *hmocks.MockAttendanceSvc
	feedSvc       *hmocks.MockFeedSvc
	userSvc       *hmocks.MockUserSvc
	uploader      *hmocks.MockUploader
	router        http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		wizardSvc:     hmocks.NewMockWizardSvc(t),
		eventSvc:      hmocks.NewMockEventSvc(t),
		attendanceSvc: hmocks.NewMockAttendanceSvc(t),
		feedSvc:       hmocks.NewMockFeedSvc(t),
		userSvc:       hmocks.NewMockUserSvc(t),
		uploader:      hmocks.NewMockUploader(t),
	}

	h := NewHandler(env.wizardSvc, env.eventSvc, env.attendanceSvc, env.feedSvc, env.userSvc, env.uploader)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/wizard", h.OpenWizard)
		api.GET("/wizard/:id", h.GetWizard)
		api.POST("/wizard/:id/next", h.NextStep)
		api.POST("/wizard/:id/back", h.PrevStep)
		api.POST("/wizard/:id/submit", h.SubmitWizard)
		api.DELETE("/wizard/:id", h.CloseWizard)

		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/attend", h.AttendEvent)
		api.POST("/events/:id/cancel", h.CancelAttendance)
		api.GET("/events/:id/attendees", h.GetEventAttendees)
		api.GET("/events/:id/posts", h.EventPosts)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/attendances", h.GetUserAttendances)
		api.GET("/users/:id/feed", h.UserFeed)
		api.GET("/users/:id/suggested", h.SuggestedUsers)
		api.POST("/users/:id/follow", h.FollowUser)
		api.POST("/users/:id/unfollow", h.UnfollowUser)

		api.POST("/posts", h.CreatePost)
		api.POST("/posts/:id/like", h.LikePost)
		api.POST("/posts/:id/unlike", h.UnlikePost)
		api.POST("/posts/:id/comments", h.AddComment)
		api.GET("/posts/:id/comments", h.ListComments)

		api.POST("/uploads", h.UploadFile)
		api.DELETE("/uploads/:key", h.DeleteUpload)
	}
	env.router = r

	return env
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	e.router.ServeHTTP(w, req)
	return w
}

// --- Wizard ---

func TestHandler_OpenWizard_Success(t *testing.T) {
	env := setupRouter(t)

	orgID := uuid.New().String()
	sess := &domain.DraftSession{
		ID:        uuid.New().String(),
		Step:      domain.StepMainInfo,
		Draft:     domain.Draft{OrganizerID: orgID},
		UpdatedAt: time.Now(),
	}
	env.wizardSvc.EXPECT().Open(mock.Anything, orgID, "").Return(sess, nil)

	w := env.do(http.MethodPost, "/api/wizard", dto.OpenWizardRequest{OrganizerID: orgID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.DraftSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sess.ID, resp.ID)
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, "main_info", resp.StepName)
	assert.False(t, resp.EditMode)
	assert.Equal(t, []domain.TicketType{}, resp.Draft.TicketTypes)
}

func TestHandler_OpenWizard_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/wizard", `{"organizer_id":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_OpenWizard_Forbidden(t *testing.T) {
	env := setupRouter(t)

	orgID, eventID := uuid.New().String(), uuid.New().String()
	env.wizardSvc.EXPECT().Open(mock.Anything, orgID, eventID).Return(nil, domain.ErrForbidden)

	w := env.do(http.MethodPost, "/api/wizard", dto.OpenWizardRequest{OrganizerID: orgID, EventID: eventID})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_NextStep_MainInfo(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.wizardSvc.EXPECT().Next(mock.Anything, id, mock.MatchedBy(func(f wizard.Form) bool {
		mi, ok := f.(*wizard.MainInfo)
		return ok &&
			mi.Title == "Jazz Night" &&
			mi.StartsAt.Equal(time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)) &&
			mi.EndsAt.Equal(time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC))
	})).Return(&domain.DraftSession{ID: id, Step: domain.StepPhotos}, nil)

	body := `{"main_info":{"title":"Jazz Night","start_date":"2025-06-01T20:00","end_date":"2025-06-01T23:00:00Z","location":"Seattle","capacity":100,"price":25}}`
	w := env.do(http.MethodPost, "/api/wizard/"+id+"/next", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DraftSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "photos", resp.StepName)
}

func TestHandler_NextStep_BadDate(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	body := `{"main_info":{"title":"Jazz Night","start_date":"June 1st","end_date":"2025-06-01T23:00"}}`
	w := env.do(http.MethodPost, "/api/wizard/"+id+"/next", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "start_date", resp.Fields[0].Field)
}

func TestHandler_NextStep_RequiresExactlyOneForm(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	for _, body := range []string{`{}`, `{"photos":{},"venue":{}}`} {
		w := env.do(http.MethodPost, "/api/wizard/"+id+"/next", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestHandler_NextStep_ValidationFields(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	verr := domain.NewValidationError(domain.FieldError{Field: "title", Message: "is required"})
	env.wizardSvc.EXPECT().Next(mock.Anything, id, mock.Anything).Return(nil, verr)

	w := env.do(http.MethodPost, "/api/wizard/"+id+"/next", `{"photos":{}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []domain.FieldError{{Field: "title", Message: "is required"}}, resp.Fields)
}

func TestHandler_NextStep_StepMismatch(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.wizardSvc.EXPECT().Next(mock.Anything, id, mock.Anything).Return(nil, domain.ErrStepMismatch)

	w := env.do(http.MethodPost, "/api/wizard/"+id+"/next", `{"venue":{}}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetWizard_NotFound(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.wizardSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrDraftNotFound)

	w := env.do(http.MethodGet, "/api/wizard/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetWizard_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/wizard/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PrevStep_NoPrevious(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.wizardSvc.EXPECT().Back(mock.Anything, id).Return(nil, domain.ErrNoPreviousStep)

	w := env.do(http.MethodPost, "/api/wizard/"+id+"/back", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitWizard_EmptyBody(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	event := &domain.Event{ID: uuid.New().String(), EventInfo: domain.EventInfo{Title: "Jazz Night"}}
	env.wizardSvc.EXPECT().Submit(mock.Anything, id, mock.AnythingOfType("*wizard.Venue")).Return(event, nil)

	w := env.do(http.MethodPost, "/api/wizard/"+id+"/submit", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jazz Night", resp.Title)
}

func TestHandler_SubmitWizard_WithVenue(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.wizardSvc.EXPECT().Submit(mock.Anything, id, mock.MatchedBy(func(f wizard.Form) bool {
		v, ok := f.(*wizard.Venue)
		return ok && v.VenueName == "Blue Note" && len(v.Attachments) == 1
	})).Return(&domain.Event{ID: uuid.New().String()}, nil)

	body := `{"venue":{"venue_name":"Blue Note","attachments":[{"kind":"permit","name":"Permit","url":"https://docs.example.com/p.pdf"}]}}`
	w := env.do(http.MethodPost, "/api/wizard/"+id+"/submit", body)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_SubmitWizard_Failure(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.wizardSvc.EXPECT().Submit(mock.Anything, id, mock.Anything).Return(nil, errors.New("submit draft: db down"))

	w := env.do(http.MethodPost, "/api/wizard/"+id+"/submit", `{"venue":{}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_CloseWizard(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.wizardSvc.EXPECT().Close(mock.Anything, id).Return(nil)

	w := env.do(http.MethodDelete, "/api/wizard/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Events ---

func TestHandler_ListEvents_Filter(t *testing.T) {
	env := setupRouter(t)

	orgID := uuid.New().String()
	filter := domain.EventFilter{OrganizerID: orgID, Location: "Seattle"}
	env.eventSvc.EXPECT().List(mock.Anything, filter).Return([]*domain.Event{{ID: "e1"}}, nil)

	w := env.do(http.MethodGet, "/api/events?organizer_id="+orgID+"&location=Seattle", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListEvents_InvalidOrganizer(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/events?organizer_id=bad", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	env := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:          domain.Event{ID: eventID, EventInfo: domain.EventInfo{Title: "Concert", Capacity: 100}},
		AvailableSpots: 95,
		Attendees:      []domain.Attendance{{ID: "a1", UserID: "u1", Status: domain.AttendanceStatusGoing}},
	}
	env.eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := env.do(http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 95, resp.AvailableSpots)
	assert.Len(t, resp.Attendees, 1)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	env := setupRouter(t)

	eventID := uuid.New().String()
	env.eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := env.do(http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteEvent_Forbidden(t *testing.T) {
	env := setupRouter(t)

	eventID, orgID := uuid.New().String(), uuid.New().String()
	env.eventSvc.EXPECT().Delete(mock.Anything, eventID, orgID).Return(domain.ErrForbidden)

	w := env.do(http.MethodDelete, "/api/events/"+eventID, dto.DeleteEventRequest{OrganizerID: orgID})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Attendance ---

func TestHandler_AttendEvent_Success(t *testing.T) {
	env := setupRouter(t)

	eventID, userID := uuid.New().String(), uuid.New().String()
	attendance := &domain.Attendance{ID: "a1", EventID: eventID, UserID: userID, Status: domain.AttendanceStatusInterested}
	env.attendanceSvc.EXPECT().Attend(mock.Anything, eventID, userID, domain.AttendanceStatusInterested).Return(attendance, nil)

	w := env.do(http.MethodPost, "/api/events/"+eventID+"/attend", dto.AttendRequest{UserID: userID, Status: "interested"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "interested", resp.Status)
}

func TestHandler_AttendEvent_NoSpots(t *testing.T) {
	env := setupRouter(t)

	eventID, userID := uuid.New().String(), uuid.New().String()
	env.attendanceSvc.EXPECT().Attend(mock.Anything, eventID, userID, domain.AttendanceStatus("")).
		Return(nil, domain.ErrNoAvailableSpots)

	w := env.do(http.MethodPost, "/api/events/"+eventID+"/attend", dto.AttendRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AttendEvent_BadStatus(t *testing.T) {
	env := setupRouter(t)

	eventID := uuid.New().String()
	w := env.do(http.MethodPost, "/api/events/"+eventID+"/attend",
		dto.AttendRequest{UserID: uuid.New().String(), Status: "maybe"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelAttendance_NotFound(t *testing.T) {
	env := setupRouter(t)

	eventID, userID := uuid.New().String(), uuid.New().String()
	env.attendanceSvc.EXPECT().Cancel(mock.Anything, eventID, userID).Return(domain.ErrAttendanceNotFound)

	w := env.do(http.MethodPost, "/api/events/"+eventID+"/cancel", dto.CancelAttendanceRequest{UserID: userID})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetUser(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.userSvc.EXPECT().GetByID(mock.Anything, userID).
		Return(&domain.User{ID: userID, Username: "blue_note"}, nil)

	w := env.do(http.MethodGet, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "blue_note", resp.Username)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.userSvc.EXPECT().GetByID(mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	w := env.do(http.MethodGet, "/api/users/"+userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEventAttendees(t *testing.T) {
	env := setupRouter(t)

	eventID := uuid.New().String()
	env.attendanceSvc.EXPECT().ListByEvent(mock.Anything, eventID).
		Return([]*domain.Attendance{{ID: "a1", EventID: eventID, Status: domain.AttendanceStatusGoing}}, nil)

	w := env.do(http.MethodGet, "/api/events/"+eventID+"/attendees", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "a1", resp[0].ID)
}

func TestHandler_GetEventAttendees_NotFound(t *testing.T) {
	env := setupRouter(t)

	eventID := uuid.New().String()
	env.attendanceSvc.EXPECT().ListByEvent(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := env.do(http.MethodGet, "/api/events/"+eventID+"/attendees", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetUserAttendances(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.attendanceSvc.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Attendance{{ID: "a1"}, {ID: "a2"}}, nil)

	w := env.do(http.MethodGet, "/api/users/"+userID+"/attendances", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	env := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "bluenote", DisplayName: "Blue Note", Role: domain.UserRoleVenue}
	env.userSvc.EXPECT().Create(mock.Anything, domain.CreateUserInput{
		Username:    "bluenote",
		DisplayName: "Blue Note",
		Role:        domain.UserRoleVenue,
	}).Return(user, nil)

	w := env.do(http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "bluenote", DisplayName: "Blue Note", Role: "venue"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "venue", resp.Role)
}

func TestHandler_CreateUser_BadRole(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "x", Role: "promoter"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	env := setupRouter(t)

	env.userSvc.EXPECT().List(mock.Anything).Return([]*domain.User{{ID: "u1"}}, nil)

	w := env.do(http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_FollowUser_AlreadyFollowing(t *testing.T) {
	env := setupRouter(t)

	followee, follower := uuid.New().String(), uuid.New().String()
	env.userSvc.EXPECT().Follow(mock.Anything, follower, followee).Return(domain.ErrAlreadyFollowing)

	w := env.do(http.MethodPost, "/api/users/"+followee+"/follow", dto.FollowRequest{FollowerID: follower})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UnfollowUser(t *testing.T) {
	env := setupRouter(t)

	followee, follower := uuid.New().String(), uuid.New().String()
	env.userSvc.EXPECT().Unfollow(mock.Anything, follower, followee).Return(nil)

	w := env.do(http.MethodPost, "/api/users/"+followee+"/unfollow", dto.FollowRequest{FollowerID: follower})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SuggestedUsers(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	suggested := []*domain.SuggestedUser{{User: domain.User{ID: "u2", Username: "band"}, Followers: 12}}
	env.userSvc.EXPECT().Suggested(mock.Anything, userID, 5).Return(suggested, nil)

	w := env.do(http.MethodGet, "/api/users/"+userID+"/suggested?limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SuggestedUserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 12, resp[0].Followers)
	assert.Equal(t, "band", resp[0].Username)
}

func TestHandler_SuggestedUsers_BadLimit(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/users/"+uuid.New().String()+"/suggested?limit=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Posts ---

func TestHandler_CreatePost_Success(t *testing.T) {
	env := setupRouter(t)

	authorID := uuid.New().String()
	post := &domain.Post{ID: "p1", AuthorID: authorID, Content: "Doors at **7**"}
	env.feedSvc.EXPECT().CreatePost(mock.Anything, domain.CreatePostInput{AuthorID: authorID, Content: "Doors at **7**"}).
		Return(post, nil)

	w := env.do(http.MethodPost, "/api/posts", dto.CreatePostRequest{AuthorID: authorID, Content: "Doors at **7**"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Doors at **7**", resp.Content)
	assert.Contains(t, resp.ContentHTML, "<strong>7</strong>")
}

func TestHandler_UserFeed(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.feedSvc.EXPECT().Feed(mock.Anything, userID, 0).Return([]*domain.Post{{ID: "p1"}, {ID: "p2"}}, nil)

	w := env.do(http.MethodGet, "/api/users/"+userID+"/feed", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_EventPosts(t *testing.T) {
	env := setupRouter(t)

	eventID := uuid.New().String()
	env.feedSvc.EXPECT().EventPosts(mock.Anything, eventID).Return(nil, nil)

	w := env.do(http.MethodGet, "/api/events/"+eventID+"/posts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_LikePost(t *testing.T) {
	env := setupRouter(t)

	postID, userID := uuid.New().String(), uuid.New().String()
	env.feedSvc.EXPECT().Like(mock.Anything, postID, userID).Return(4, nil)

	w := env.do(http.MethodPost, "/api/posts/"+postID+"/like", dto.LikeRequest{UserID: userID})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LikeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.LikeCount)
}

func TestHandler_UnlikePost_NotLiked(t *testing.T) {
	env := setupRouter(t)

	postID, userID := uuid.New().String(), uuid.New().String()
	env.feedSvc.EXPECT().Unlike(mock.Anything, postID, userID).Return(0, domain.ErrNotLiked)

	w := env.do(http.MethodPost, "/api/posts/"+postID+"/unlike", dto.LikeRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AddComment(t *testing.T) {
	env := setupRouter(t)

	postID, authorID := uuid.New().String(), uuid.New().String()
	env.feedSvc.EXPECT().Comment(mock.Anything, postID, authorID, "see you there").
		Return(&domain.Comment{ID: "c1", PostID: postID, AuthorID: authorID, Content: "see you there"}, nil)

	w := env.do(http.MethodPost, "/api/posts/"+postID+"/comments", dto.CommentRequest{AuthorID: authorID, Content: "see you there"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ListComments_PostNotFound(t *testing.T) {
	env := setupRouter(t)

	postID := uuid.New().String()
	env.feedSvc.EXPECT().Comments(mock.Anything, postID).Return(nil, domain.ErrPostNotFound)

	w := env.do(http.MethodGet, "/api/posts/"+postID+"/comments", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Uploads ---

func TestHandler_UploadFile(t *testing.T) {
	env := setupRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	obj := storage.Object{Key: "k.png", URL: "/media/k.png", Size: 9}
	env.uploader.EXPECT().Upload(mock.Anything, "cover.png", mock.Anything).Return(obj, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp storage.Object
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/media/k.png", resp.URL)
}

func TestHandler_UploadFile_MissingFile(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/uploads", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteUpload_NotFound(t *testing.T) {
	env := setupRouter(t)

	env.uploader.EXPECT().Remove(mock.Anything, "missing.png").Return(domain.ErrUploadNotFound)

	w := env.do(http.MethodDelete, "/api/uploads/missing.png", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
