package domain

import "time"

type EventStatus string

const (
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

type AttachmentKind string

const (
	AttachmentPermit    AttachmentKind = "permit"
	AttachmentInsurance AttachmentKind = "insurance"
	AttachmentContract  AttachmentKind = "contract"
	AttachmentOther     AttachmentKind = "other"
)

type TicketType struct {
	ID       string  `json:"id,omitempty"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Attachment - документ площадки или разрешение (страховка, договор и т.п.).
type Attachment struct {
	ID   string         `json:"id,omitempty"`
	Kind AttachmentKind `json:"kind"`
	Name string         `json:"name"`
	URL  string         `json:"url"`
}

// EventInfo - поля события, которые заполняются шагами мастера.
type EventInfo struct {
	// шаг 1
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`

	// шаг 2
	CoverImageURL string   `json:"cover_image_url"`
	GalleryURLs   []string `json:"gallery_urls"`

	// шаг 3
	TicketTypes []TicketType `json:"ticket_types"`
	SocialLinks SocialLinks  `json:"social_links"`

	// шаг 4
	VenueID            string       `json:"venue_id"`
	VenueName          string       `json:"venue_name"`
	Attachments        []Attachment `json:"attachments"`
	AgeRestriction     int          `json:"age_restriction"`
	AccessibilityNotes string       `json:"accessibility_notes"`
}

// Clone возвращает копию, не разделяющую срезы с исходной.
func (i EventInfo) Clone() EventInfo {
	c := i
	if i.GalleryURLs != nil {
		c.GalleryURLs = append([]string(nil), i.GalleryURLs...)
	}
	if i.TicketTypes != nil {
		c.TicketTypes = append([]TicketType(nil), i.TicketTypes...)
	}
	if i.Attachments != nil {
		c.Attachments = append([]Attachment(nil), i.Attachments...)
	}
	return c
}

type Event struct {
	ID          string `json:"id"`
	OrganizerID string `json:"organizer_id"`
	EventInfo
	Status    EventStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Draft возвращает черновик для редактирования события в мастере.
func (e *Event) Draft() Draft {
	return Draft{
		EventID:     e.ID,
		OrganizerID: e.OrganizerID,
		EventInfo:   e.EventInfo.Clone(),
	}
}

type EventDetails struct {
	Event          Event        `json:"event"`
	AvailableSpots int          `json:"available_spots"`
	Attendees      []Attendance `json:"attendees"`
}

type EventFilter struct {
	OrganizerID string
	Location    string
}
