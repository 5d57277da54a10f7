package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AttendanceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttendanceRepo(db *dbpg.DB) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем событие, чтобы параллельные записи не превысили вместимость
	var capacity int
	capacityQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, capacityQuery, a.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get capacity: %w", err)
	}

	if a.Status == domain.AttendanceStatusGoing {
		var going int
		goingQuery := `SELECT COUNT(*) FROM attendances WHERE event_id = $1 AND status = $2`
		if err = tx.QueryRowContext(ctx, goingQuery, a.EventID, domain.AttendanceStatusGoing).Scan(&going); err != nil {
			return fmt.Errorf("count attendances: %w", err)
		}
		if going >= capacity {
			return domain.ErrNoAvailableSpots
		}
	}

	query := `INSERT INTO attendances (id, event_id, user_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(ctx, query, a.ID, a.EventID, a.UserID, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrAlreadyAttending
			case "23503":
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("insert attendance: %w", err)
	}

	return tx.Commit()
}

func (r *AttendanceRepository) Delete(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM attendances WHERE event_id = $1 AND user_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attendance rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAttendanceNotFound
	}

	return nil
}

func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM attendances
			  WHERE event_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendances by event: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Attendance, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM attendances
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list attendances by user: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

func scanAttendances(rows rowScanner) ([]*domain.Attendance, error) {
	var res []*domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.ID, &a.EventID, &a.UserID, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
