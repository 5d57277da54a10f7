package wizard

import (
	"testing"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestMainInfo_EndBeforeStart(t *testing.T) {
	f := jazzNight(t)
	f.EndsAt = f.StartsAt.Add(-1)

	verr := fieldErrors(t, Validate(f))
	assert.Equal(t, []domain.FieldError{{Field: "end_date", Message: "must be after start_date"}}, verr.Fields)
}

func TestMainInfo_Ranges(t *testing.T) {
	f := jazzNight(t)
	f.Capacity = 0
	f.Price = -5

	verr := fieldErrors(t, Validate(f))
	assert.True(t, verr.Has("capacity"))
	assert.True(t, verr.Has("price"))
	assert.False(t, verr.Has("title"))
}

func TestMainInfo_TrimsBeforeApply(t *testing.T) {
	f := jazzNight(t)
	f.Title = "  Jazz Night  "
	require.NoError(t, Validate(f))

	var d domain.Draft
	f.Apply(&d)
	assert.Equal(t, "Jazz Night", d.Title)
}

func TestPhotos_Optional(t *testing.T) {
	assert.NoError(t, Validate(&Photos{}))
}

func TestPhotos_URLFormat(t *testing.T) {
	f := &Photos{
		CoverImageURL: "not a url",
		GalleryURLs:   []string{"https://cdn.example.com/1.png", "ftp://example.com/2.png"},
	}

	verr := fieldErrors(t, Validate(f))
	assert.True(t, verr.Has("cover_image_url"))
	assert.True(t, verr.Has("gallery_urls[1]"))
	assert.False(t, verr.Has("gallery_urls[0]"))
}

func TestPhotos_GalleryLimit(t *testing.T) {
	urls := make([]string, 11)
	for i := range urls {
		urls[i] = "https://cdn.example.com/p.png"
	}

	verr := fieldErrors(t, Validate(&Photos{GalleryURLs: urls}))
	assert.True(t, verr.Has("gallery_urls"))
}

func TestTicketing_DuplicateTypes(t *testing.T) {
	f := &Ticketing{TicketTypes: []TicketTypeInput{
		{Type: "GA", Price: 25, Quantity: 100},
		{Type: "ga ", Price: 30, Quantity: 10},
	}}

	verr := fieldErrors(t, Validate(f))
	assert.True(t, verr.Has("ticket_types[1].type"))
}

func TestTicketing_SocialLinks(t *testing.T) {
	f := &Ticketing{SocialLinks: SocialLinksInput{
		Website:   "https://tourify.example.com",
		Instagram: "instagram",
	}}

	verr := fieldErrors(t, Validate(f))
	assert.True(t, verr.Has("social_links.instagram"))
	assert.False(t, verr.Has("social_links.website"))
}

func TestVenue_Attachments(t *testing.T) {
	f := &Venue{
		VenueID: "not-a-uuid",
		Attachments: []AttachmentInput{
			{Kind: "Permit", Name: "Fire permit", URL: "https://docs.example.com/fire.pdf"},
			{Kind: "receipt", Name: "", URL: "https://docs.example.com/r.pdf"},
		},
	}

	verr := fieldErrors(t, Validate(f))
	assert.True(t, verr.Has("venue_id"))
	assert.True(t, verr.Has("attachments[1].kind"))
	assert.True(t, verr.Has("attachments[1].name"))
	assert.False(t, verr.Has("attachments[0].kind"))

	var d domain.Draft
	f.Apply(&d)
	assert.Equal(t, domain.AttachmentPermit, d.Attachments[0].Kind)
}
