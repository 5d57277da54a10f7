package dto

import (
	"time"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/markup"
)

type EventInfoResponse struct {
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Category           string              `json:"category"`
	StartDate          string              `json:"start_date"`
	EndDate            string              `json:"end_date"`
	Location           string              `json:"location"`
	Capacity           int                 `json:"capacity"`
	Price              float64             `json:"price"`
	CoverImageURL      string              `json:"cover_image_url"`
	GalleryURLs        []string            `json:"gallery_urls"`
	TicketTypes        []domain.TicketType `json:"ticket_types"`
	SocialLinks        domain.SocialLinks  `json:"social_links"`
	VenueID            string              `json:"venue_id"`
	VenueName          string              `json:"venue_name"`
	Attachments        []domain.Attachment `json:"attachments"`
	AgeRestriction     int                 `json:"age_restriction"`
	AccessibilityNotes string              `json:"accessibility_notes"`
}

type EventResponse struct {
	ID          string `json:"id"`
	OrganizerID string `json:"organizer_id"`
	EventInfoResponse
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse        `json:"event"`
	AvailableSpots int                  `json:"available_spots"`
	Attendees      []AttendanceResponse `json:"attendees"`
}

type DraftResponse struct {
	EventID     string `json:"event_id,omitempty"`
	OrganizerID string `json:"organizer_id"`
	EventInfoResponse
}

type DraftSessionResponse struct {
	ID        string        `json:"id"`
	Step      int           `json:"step"`
	StepName  string        `json:"step_name"`
	EditMode  bool          `json:"edit_mode"`
	Draft     DraftResponse `json:"draft"`
	UpdatedAt string        `json:"updated_at"`
}

type AttendanceResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type SuggestedUserResponse struct {
	UserResponse
	Followers int `json:"followers"`
}

type PostResponse struct {
	ID           string  `json:"id"`
	AuthorID     string  `json:"author_id"`
	EventID      *string `json:"event_id,omitempty"`
	Content      string  `json:"content"`
	ContentHTML  string  `json:"content_html"`
	ImageURL     string  `json:"image_url,omitempty"`
	LikeCount    int     `json:"like_count"`
	CommentCount int     `json:"comment_count"`
	CreatedAt    string  `json:"created_at"`
}

type LikeResponse struct {
	PostID    string `json:"post_id"`
	LikeCount int    `json:"like_count"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func toEventInfoResponse(i domain.EventInfo) EventInfoResponse {
	return EventInfoResponse{
		Title:              i.Title,
		Description:        i.Description,
		Category:           i.Category,
		StartDate:          formatTime(i.StartsAt),
		EndDate:            formatTime(i.EndsAt),
		Location:           i.Location,
		Capacity:           i.Capacity,
		Price:              i.Price,
		CoverImageURL:      i.CoverImageURL,
		GalleryURLs:        nonNil(i.GalleryURLs),
		TicketTypes:        nonNil(i.TicketTypes),
		SocialLinks:        i.SocialLinks,
		VenueID:            i.VenueID,
		VenueName:          i.VenueName,
		Attachments:        nonNil(i.Attachments),
		AgeRestriction:     i.AgeRestriction,
		AccessibilityNotes: i.AccessibilityNotes,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID,
		OrganizerID:       e.OrganizerID,
		EventInfoResponse: toEventInfoResponse(e.EventInfo),
		Status:            string(e.Status),
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	attendees := make([]AttendanceResponse, 0, len(d.Attendees))
	for _, a := range d.Attendees {
		attendees = append(attendees, ToAttendanceResponse(&a))
	}

	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		AvailableSpots: d.AvailableSpots,
		Attendees:      attendees,
	}
}

func ToDraftSessionResponse(s *domain.DraftSession) DraftSessionResponse {
	return DraftSessionResponse{
		ID:       s.ID,
		Step:     int(s.Step),
		StepName: s.Step.String(),
		EditMode: s.Draft.EditMode(),
		Draft: DraftResponse{
			EventID:           s.Draft.EventID,
			OrganizerID:       s.Draft.OrganizerID,
			EventInfoResponse: toEventInfoResponse(s.Draft.EventInfo),
		},
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		EventID:   a.EventID,
		UserID:    a.UserID,
		Status:    string(a.Status),
		CreatedAt: formatTime(a.CreatedAt),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      formatTime(u.CreatedAt),
	}
}

func ToSuggestedUserResponse(s *domain.SuggestedUser) SuggestedUserResponse {
	return SuggestedUserResponse{
		UserResponse: ToUserResponse(&s.User),
		Followers:    s.Followers,
	}
}

func ToPostResponse(p *domain.Post) PostResponse {
	return PostResponse{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		EventID:      p.EventID,
		Content:      p.Content,
		ContentHTML:  markup.Render(p.Content),
		ImageURL:     p.ImageURL,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    formatTime(p.CreatedAt),
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: formatTime(c.CreatedAt),
	}
}
