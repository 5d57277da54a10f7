package dto

import (
	"strings"
	"time"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stpnv0/Tourify/internal/wizard"
)

// форматы дат, которые присылает форма: datetime-local и RFC3339
var dateLayouts = []string{"2006-01-02T15:04", time.RFC3339}

type OpenWizardRequest struct {
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
	EventID     string `json:"event_id"     binding:"omitempty,uuid"`
}

type MainInfoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Location    string  `json:"location"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
}

func (r *MainInfoRequest) ToForm() (*wizard.MainInfo, error) {
	var fields []domain.FieldError

	start, ok := parseDate(r.StartDate)
	if !ok {
		fields = append(fields, domain.FieldError{Field: "start_date", Message: "must be a date like 2006-01-02T15:04"})
	}
	end, ok := parseDate(r.EndDate)
	if !ok {
		fields = append(fields, domain.FieldError{Field: "end_date", Message: "must be a date like 2006-01-02T15:04"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	return &wizard.MainInfo{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		StartsAt:    start,
		EndsAt:      end,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Price:       r.Price,
	}, nil
}

// parseDate: пустая строка - это не ошибка формата, её отклонит проверка required.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// StepRequest несёт форму ровно одного шага мастера.
type StepRequest struct {
	MainInfo  *MainInfoRequest  `json:"main_info"`
	Photos    *wizard.Photos    `json:"photos"`
	Ticketing *wizard.Ticketing `json:"ticketing"`
	Venue     *wizard.Venue     `json:"venue"`
}

func (r *StepRequest) Form() (wizard.Form, error) {
	var forms []wizard.Form

	if r.MainInfo != nil {
		f, err := r.MainInfo.ToForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	if r.Photos != nil {
		forms = append(forms, r.Photos)
	}
	if r.Ticketing != nil {
		forms = append(forms, r.Ticketing)
	}
	if r.Venue != nil {
		forms = append(forms, r.Venue)
	}

	if len(forms) != 1 {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "step",
			Message: "exactly one of main_info, photos, ticketing, venue is required",
		})
	}
	return forms[0], nil
}

// SubmitForm - форма для отправки. Все поля шага 4 необязательные, поэтому пустое тело допустимо.
func (r *StepRequest) SubmitForm() (wizard.Form, error) {
	if r.MainInfo == nil && r.Photos == nil && r.Ticketing == nil && r.Venue == nil {
		return &wizard.Venue{}, nil
	}
	return r.Form()
}

type DeleteEventRequest struct {
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
}

type AttendRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Status string `json:"status"  binding:"omitempty,oneof=going interested"`
}

type CancelAttendanceRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateUserRequest struct {
	Username       string `json:"username"     binding:"required"`
	DisplayName    string `json:"display_name"`
	Role           string `json:"role"         binding:"omitempty,oneof=artist venue fan"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type FollowRequest struct {
	FollowerID string `json:"follower_id" binding:"required,uuid"`
}

type CreatePostRequest struct {
	AuthorID string  `json:"author_id" binding:"required,uuid"`
	EventID  *string `json:"event_id"  binding:"omitempty,uuid"`
	Content  string  `json:"content"   binding:"required"`
	ImageURL string  `json:"image_url" binding:"omitempty,url"`
}

type LikeRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CommentRequest struct {
	AuthorID string `json:"author_id" binding:"required,uuid"`
	Content  string `json:"content"   binding:"required"`
}
