package pg

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

const uniqueViolation = "23505"

// LikeComment inserts the like row. The (owner, comment) unique constraint
// makes a concurrent duplicate insert a no-op instead of a double like.
func (s *Storage) LikeComment(owner domain.UserId, comment domain.CommentId) error {
	id := s.generateId("like")

	_, err := s.db.Exec(
		"INSERT INTO comment_likes (id, owner, comment) VALUES ($1, $2, $3)",
		id, owner, comment,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) UnlikeComment(owner domain.UserId, comment domain.CommentId) error {
	_, err := s.db.Exec(
		"DELETE FROM comment_likes WHERE owner = $1 AND comment = $2",
		owner, comment,
	)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) IsLiked(owner domain.UserId, comment domain.CommentId) (bool, error) {
	var liked bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM comment_likes WHERE owner = $1 AND comment = $2)",
		owner, comment,
	).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return liked, nil
}

// CountLikesByThreadId aggregates like counts for every comment of a thread.
// Comments without likes are simply absent from the map.
func (s *Storage) CountLikesByThreadId(threadId domain.ThreadId) (map[domain.CommentId]int, error) {
	rows, err := s.db.Query(`
        SELECT comment_likes.comment, COUNT(*)
        FROM comment_likes
        INNER JOIN comments ON comment_likes.comment = comments.id
        WHERE comments.thread = $1
        GROUP BY comment_likes.comment
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.CommentId]int)
	for rows.Next() {
		var comment domain.CommentId
		var count int
		if err := rows.Scan(&comment, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[comment] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}
