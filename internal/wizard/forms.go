package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/Tourify/internal/domain"
)

// Form - данные одного шага мастера. Каждая форма проверяет и записывает в черновик только свою часть.
type Form interface {
	Step() domain.DraftStep
	Apply(d *domain.Draft)

	normalize()
	crossCheck() []domain.FieldError
}

// MainInfo - шаг 1: основная информация о событии.
type MainInfo struct {
	Title       string    `json:"title"       validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	Category    string    `json:"category"    validate:"max=64"`
	StartsAt    time.Time `json:"start_date"  validate:"required"`
	EndsAt      time.Time `json:"end_date"    validate:"required"`
	Location    string    `json:"location"    validate:"required,max=255"`
	Capacity    int       `json:"capacity"    validate:"gte=1,lte=1000000"`
	Price       float64   `json:"price"       validate:"gte=0"`
}

func (f *MainInfo) Step() domain.DraftStep { return domain.StepMainInfo }

func (f *MainInfo) Apply(d *domain.Draft) {
	d.Title = f.Title
	d.Description = f.Description
	d.Category = f.Category
	d.StartsAt = f.StartsAt
	d.EndsAt = f.EndsAt
	d.Location = f.Location
	d.Capacity = f.Capacity
	d.Price = f.Price
}

func (f *MainInfo) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.Location = strings.TrimSpace(f.Location)
}

func (f *MainInfo) crossCheck() []domain.FieldError {
	if f.StartsAt.IsZero() || f.EndsAt.IsZero() {
		return nil
	}
	if !f.EndsAt.After(f.StartsAt) {
		return []domain.FieldError{{Field: "end_date", Message: "must be after start_date"}}
	}
	return nil
}

// Photos - шаг 2: обложка и галерея. Шаг необязательный.
type Photos struct {
	CoverImageURL string   `json:"cover_image_url" validate:"omitempty,http_url"`
	GalleryURLs   []string `json:"gallery_urls"    validate:"max=10,dive,required,http_url"`
}

func (f *Photos) Step() domain.DraftStep { return domain.StepPhotos }

func (f *Photos) Apply(d *domain.Draft) {
	d.CoverImageURL = f.CoverImageURL
	d.GalleryURLs = append([]string(nil), f.GalleryURLs...)
}

func (f *Photos) normalize() {
	f.CoverImageURL = strings.TrimSpace(f.CoverImageURL)
	for i := range f.GalleryURLs {
		f.GalleryURLs[i] = strings.TrimSpace(f.GalleryURLs[i])
	}
}

func (f *Photos) crossCheck() []domain.FieldError { return nil }

type TicketTypeInput struct {
	Type     string  `json:"type"     validate:"required,max=64"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

type SocialLinksInput struct {
	Website   string `json:"website"   validate:"omitempty,http_url"`
	Instagram string `json:"instagram" validate:"omitempty,http_url"`
	Facebook  string `json:"facebook"  validate:"omitempty,http_url"`
	Twitter   string `json:"twitter"   validate:"omitempty,http_url"`
}

// Ticketing - шаг 3: типы билетов и ссылки на соцсети.
type Ticketing struct {
	TicketTypes []TicketTypeInput `json:"ticket_types" validate:"max=20,dive"`
	SocialLinks SocialLinksInput  `json:"social_links"`
}

func (f *Ticketing) Step() domain.DraftStep { return domain.StepTicketing }

func (f *Ticketing) Apply(d *domain.Draft) {
	d.TicketTypes = make([]domain.TicketType, 0, len(f.TicketTypes))
	for _, t := range f.TicketTypes {
		d.TicketTypes = append(d.TicketTypes, domain.TicketType{
			Type:     t.Type,
			Price:    t.Price,
			Quantity: t.Quantity,
		})
	}
	d.SocialLinks = domain.SocialLinks{
		Website:   f.SocialLinks.Website,
		Instagram: f.SocialLinks.Instagram,
		Facebook:  f.SocialLinks.Facebook,
		Twitter:   f.SocialLinks.Twitter,
	}
}

func (f *Ticketing) normalize() {
	for i := range f.TicketTypes {
		f.TicketTypes[i].Type = strings.TrimSpace(f.TicketTypes[i].Type)
	}
	s := &f.SocialLinks
	s.Website = strings.TrimSpace(s.Website)
	s.Instagram = strings.TrimSpace(s.Instagram)
	s.Facebook = strings.TrimSpace(s.Facebook)
	s.Twitter = strings.TrimSpace(s.Twitter)
}

func (f *Ticketing) crossCheck() []domain.FieldError {
	var errs []domain.FieldError
	seen := make(map[string]struct{}, len(f.TicketTypes))
	for i, t := range f.TicketTypes {
		if t.Type == "" {
			continue
		}
		key := strings.ToLower(t.Type)
		if _, ok := seen[key]; ok {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("ticket_types[%d].type", i),
				Message: fmt.Sprintf("duplicates ticket type %q", t.Type),
			})
			continue
		}
		seen[key] = struct{}{}
	}
	return errs
}

type AttachmentInput struct {
	Kind string `json:"kind" validate:"required,oneof=permit insurance contract other"`
	Name string `json:"name" validate:"required,max=255"`
	URL  string `json:"url"  validate:"required,http_url"`
}

// Venue - шаг 4: площадка и документы. Все поля необязательные.
type Venue struct {
	VenueID            string            `json:"venue_id"            validate:"omitempty,uuid"`
	VenueName          string            `json:"venue_name"          validate:"max=255"`
	Attachments        []AttachmentInput `json:"attachments"         validate:"max=20,dive"`
	AgeRestriction     int               `json:"age_restriction"     validate:"gte=0,lte=21"`
	AccessibilityNotes string            `json:"accessibility_notes" validate:"max=2000"`
}

func (f *Venue) Step() domain.DraftStep { return domain.StepVenue }

func (f *Venue) Apply(d *domain.Draft) {
	d.VenueID = f.VenueID
	d.VenueName = f.VenueName
	d.AgeRestriction = f.AgeRestriction
	d.AccessibilityNotes = f.AccessibilityNotes
	d.Attachments = make([]domain.Attachment, 0, len(f.Attachments))
	for _, a := range f.Attachments {
		d.Attachments = append(d.Attachments, domain.Attachment{
			Kind: domain.AttachmentKind(a.Kind),
			Name: a.Name,
			URL:  a.URL,
		})
	}
}

func (f *Venue) normalize() {
	f.VenueID = strings.TrimSpace(f.VenueID)
	f.VenueName = strings.TrimSpace(f.VenueName)
	f.AccessibilityNotes = strings.TrimSpace(f.AccessibilityNotes)
	for i := range f.Attachments {
		f.Attachments[i].Kind = strings.ToLower(strings.TrimSpace(f.Attachments[i].Kind))
		f.Attachments[i].Name = strings.TrimSpace(f.Attachments[i].Name)
		f.Attachments[i].URL = strings.TrimSpace(f.Attachments[i].URL)
	}
}

func (f *Venue) crossCheck() []domain.FieldError { return nil }
