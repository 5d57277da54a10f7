package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `e.id, e.organizer_id, e.title, e.description, e.category,
	e.starts_at, e.ends_at, e.location, e.capacity, e.price,
	e.cover_image_url, e.gallery_urls,
	e.website_url, e.instagram_url, e.facebook_url, e.twitter_url,
	e.venue_id, e.venue_name, e.age_restriction, e.accessibility_notes,
	e.status, e.created_at, e.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (id, organizer_id, title, description, category,
				starts_at, ends_at, location, capacity, price,
				cover_image_url, gallery_urls,
				website_url, instagram_url, facebook_url, twitter_url,
				venue_id, venue_name, age_restriction, accessibility_notes,
				status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			          $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err = tx.ExecContext(
		ctx, query,
		e.ID, e.OrganizerID, e.Title, e.Description, e.Category,
		e.StartsAt, e.EndsAt, e.Location, e.Capacity, e.Price,
		e.CoverImageURL, pq.Array(nonNil(e.GalleryURLs)),
		e.SocialLinks.Website, e.SocialLinks.Instagram, e.SocialLinks.Facebook, e.SocialLinks.Twitter,
		e.VenueID, e.VenueName, e.AgeRestriction, e.AccessibilityNotes,
		e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	if err = insertChildren(ctx, tx, e); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET title = $2, description = $3, category = $4,
			      starts_at = $5, ends_at = $6, location = $7, capacity = $8, price = $9,
			      cover_image_url = $10, gallery_urls = $11,
			      website_url = $12, instagram_url = $13, facebook_url = $14, twitter_url = $15,
			      venue_id = $16, venue_name = $17, age_restriction = $18, accessibility_notes = $19,
			      updated_at = $20
			  WHERE id = $1`
	res, err := tx.ExecContext(
		ctx, query,
		e.ID, e.Title, e.Description, e.Category,
		e.StartsAt, e.EndsAt, e.Location, e.Capacity, e.Price,
		e.CoverImageURL, pq.Array(nonNil(e.GalleryURLs)),
		e.SocialLinks.Website, e.SocialLinks.Instagram, e.SocialLinks.Facebook, e.SocialLinks.Twitter,
		e.VenueID, e.VenueName, e.AgeRestriction, e.AccessibilityNotes,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	// дочерние записи пересоздаются целиком
	if _, err = tx.ExecContext(ctx, `DELETE FROM event_ticket_types WHERE event_id = $1`, e.ID); err != nil {
		return fmt.Errorf("delete ticket types: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM event_attachments WHERE event_id = $1`, e.ID); err != nil {
		return fmt.Errorf("delete attachments: %w", err)
	}

	if err = insertChildren(ctx, tx, e); err != nil {
		return err
	}

	return tx.Commit()
}

func insertChildren(ctx context.Context, tx execer, e *domain.Event) error {
	for i, t := range e.TicketTypes {
		query := `INSERT INTO event_ticket_types (id, event_id, position, type, price, quantity)
				  VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.ExecContext(ctx, query, t.ID, e.ID, i, t.Type, t.Price, t.Quantity); err != nil {
			return fmt.Errorf("insert ticket type: %w", err)
		}
	}

	for i, a := range e.Attachments {
		query := `INSERT INTO event_attachments (id, event_id, position, kind, name, url)
				  VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.ExecContext(ctx, query, a.ID, e.ID, i, a.Kind, a.Name, a.URL); err != nil {
			return fmt.Errorf("insert attachment: %w", err)
		}
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if err = r.loadChildren(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if filter.OrganizerID != "" {
		args = append(args, filter.OrganizerID)
		conds = append(conds, fmt.Sprintf("e.organizer_id = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("e.location ILIKE $%d", len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events e`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY e.starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	if err = r.loadChildren(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `
		SELECT e.capacity - COUNT(a.id) AS available_spots
		FROM events e
		LEFT JOIN attendances a
			ON a.event_id = e.id
			AND a.status = $2
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.AttendanceStatusGoing)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan available spots: %w", err)
	}

	e, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &domain.EventDetails{Event: *e, AvailableSpots: available}, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// loadChildren подгружает типы билетов и документы одним запросом на таблицу.
func (r *EventRepository) loadChildren(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	ticketQuery := `SELECT id, event_id, type, price, quantity
					FROM event_ticket_types
					WHERE event_id = ANY($1)
					ORDER BY event_id, position`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, ticketQuery, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t       domain.TicketType
			eventID string
		)
		if err = rows.Scan(&t.ID, &eventID, &t.Type, &t.Price, &t.Quantity); err != nil {
			return fmt.Errorf("scan ticket type: %w", err)
		}
		if e, ok := byID[eventID]; ok {
			e.TicketTypes = append(e.TicketTypes, t)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate ticket types: %w", err)
	}

	attachmentQuery := `SELECT id, event_id, kind, name, url
						FROM event_attachments
						WHERE event_id = ANY($1)
						ORDER BY event_id, position`
	arows, err := r.db.QueryWithRetry(ctx, r.strategy, attachmentQuery, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list attachments: %w", err)
	}
	defer arows.Close()

	for arows.Next() {
		var (
			a       domain.Attachment
			eventID string
		)
		if err = arows.Scan(&a.ID, &eventID, &a.Kind, &a.Name, &a.URL); err != nil {
			return fmt.Errorf("scan attachment: %w", err)
		}
		if e, ok := byID[eventID]; ok {
			e.Attachments = append(e.Attachments, a)
		}
	}

	return arows.Err()
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	err := s.Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Category,
		&e.StartsAt, &e.EndsAt, &e.Location, &e.Capacity, &e.Price,
		&e.CoverImageURL, pq.Array(&e.GalleryURLs),
		&e.SocialLinks.Website, &e.SocialLinks.Instagram, &e.SocialLinks.Facebook, &e.SocialLinks.Twitter,
		&e.VenueID, &e.VenueName, &e.AgeRestriction, &e.AccessibilityNotes,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
