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

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, display_name, role, telegram_chat_id, created_at)
 			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Username, user.DisplayName, user.Role, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, display_name, role, telegram_chat_id, created_at
    		  FROM users
    		  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, username, display_name, role, telegram_chat_id, created_at
			  FROM users
			  ORDER BY username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &u.TelegramChatID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	query := `INSERT INTO follows (follower_id, followee_id, created_at) VALUES ($1, $2, now())`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, followerID, followeeID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrAlreadyFollowing
			case "23503":
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("insert follow: %w", err)
	}

	return nil
}

func (r *UserRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("follow rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFollowing
	}

	return nil
}

// Suggested возвращает пользователей, на которых userID ещё не подписан, по числу подписчиков.
func (r *UserRepository) Suggested(ctx context.Context, userID string, limit int) ([]*domain.SuggestedUser, error) {
	query := `SELECT u.id, u.username, u.display_name, u.role, u.telegram_chat_id, u.created_at,
					 COUNT(f.follower_id) AS followers
			  FROM users u
			  LEFT JOIN follows f ON f.followee_id = u.id
			  WHERE u.id <> $1
			    AND NOT EXISTS (
			        SELECT 1 FROM follows mine
			        WHERE mine.follower_id = $1 AND mine.followee_id = u.id
			    )
			  GROUP BY u.id
			  ORDER BY followers DESC, u.username
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list suggested users: %w", err)
	}
	defer rows.Close()

	var res []*domain.SuggestedUser
	for rows.Next() {
		var s domain.SuggestedUser
		u := &s.User
		if err = rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &u.TelegramChatID, &u.CreatedAt, &s.Followers); err != nil {
			return nil, fmt.Errorf("scan suggested user: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
