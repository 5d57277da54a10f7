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

const postColumns = `p.id, p.author_id, p.event_id, p.content, p.image_url,
	p.like_count, p.comment_count, p.created_at`

type PostRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostRepo(db *dbpg.DB) *PostRepository {
	return &PostRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	query := `INSERT INTO posts (id, author_id, event_id, content, image_url, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.AuthorID, p.EventID, p.Content, p.ImageURL, p.CreatedAt)
	if err != nil {
		return mapForeignKey(err, "insert post")
	}

	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	return p, nil
}

func (r *PostRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Post, error) {
	query := `SELECT ` + postColumns + `
			  FROM posts p
			  WHERE p.event_id = $1
			  ORDER BY p.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list posts by event: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// Feed - собственные посты пользователя и посты тех, на кого он подписан.
func (r *PostRepository) Feed(ctx context.Context, userID string, limit int) ([]*domain.Post, error) {
	query := `SELECT ` + postColumns + `
			  FROM posts p
			  WHERE p.author_id = $1
			     OR p.author_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)
			  ORDER BY p.created_at DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) Like(ctx context.Context, postID, userID string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO post_likes (post_id, user_id, created_at) VALUES ($1, $2, now())`,
		postID, userID,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.ErrAlreadyLiked
		}
		return 0, mapForeignKey(err, "insert like")
	}

	var count int
	if err = tx.QueryRowContext(ctx,
		`UPDATE posts SET like_count = like_count + 1 WHERE id = $1 RETURNING like_count`,
		postID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("increment likes: %w", err)
	}

	return count, tx.Commit()
}

func (r *PostRepository) Unlike(ctx context.Context, postID, userID string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete like: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("like rows affected: %w", err)
	}
	if rows == 0 {
		return 0, domain.ErrNotLiked
	}

	var count int
	if err = tx.QueryRowContext(ctx,
		`UPDATE posts SET like_count = GREATEST(like_count - 1, 0) WHERE id = $1 RETURNING like_count`,
		postID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("decrement likes: %w", err)
	}

	return count, tx.Commit()
}

func (r *PostRepository) AddComment(ctx context.Context, c *domain.Comment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO post_comments (id, post_id, author_id, content, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, c.ID, c.PostID, c.AuthorID, c.Content, c.CreatedAt); err != nil {
		return mapForeignKey(err, "insert comment")
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1`, c.PostID,
	); err != nil {
		return fmt.Errorf("increment comments: %w", err)
	}

	return tx.Commit()
}

func (r *PostRepository) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	query := `SELECT id, post_id, author_id, content, created_at
			  FROM post_comments
			  WHERE post_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err = rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func scanPost(s scanner) (*domain.Post, error) {
	var p domain.Post
	err := s.Scan(&p.ID, &p.AuthorID, &p.EventID, &p.Content, &p.ImageURL, &p.LikeCount, &p.CommentCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPosts(rows rowScanner) ([]*domain.Post, error) {
	var res []*domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

// mapForeignKey переводит нарушение внешнего ключа в ошибку "не найдено" для соответствующей сущности.
func mapForeignKey(err error, op string) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		switch {
		case strings.Contains(pgErr.Constraint, "post_id"):
			return domain.ErrPostNotFound
		case strings.Contains(pgErr.Constraint, "event_id"):
			return domain.ErrEventNotFound
		default:
			return domain.ErrUserNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
