package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddComment(owner domain.UserId, comment domain.PostComment) (domain.PostedComment, error) {
	id := s.generateId("comment")

	var insertedId domain.CommentId
	var content string
	var insertedOwner domain.UserId
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, thread, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, comment.Content, comment.Thread, owner).Scan(&insertedId, &content, &insertedOwner)
	if err != nil {
		return domain.PostedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewPostedComment(insertedId, content, insertedOwner)
}

func (s *Storage) FindCommentById(id domain.CommentId) (domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRow(`
        SELECT id, content, date, thread, owner, is_delete
        FROM comments
        WHERE id = $1
    `, id).Scan(&c.Id, &c.Content, &c.Date, &c.Thread, &c.Owner, &c.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NewNotFound("komentar tidak ditemukan")
		}
		return domain.Comment{}, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return c, nil
}

// GetCommentsByThreadId returns every comment of a thread in creation order,
// soft-deleted rows included. Redaction is the read model's job, not ours.
func (s *Storage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentWithAuthor, error) {
	rows, err := s.db.Query(`
        SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete
        FROM comments
        INNER JOIN users ON comments.owner = users.id
        WHERE comments.thread = $1
        ORDER BY comments.date ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.CommentWithAuthor
	for rows.Next() {
		var c domain.CommentWithAuthor
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

func (s *Storage) VerifyCommentBelongsToThread(id domain.CommentId, threadId domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1 AND thread = $2)",
		id, threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment membership: %w", err)
	}
	if !exists {
		return internal_errors.NewNotFound("komentar tidak ditemukan pada thread yang dimaksud")
	}
	return nil
}

// DeleteComment flips is_delete with a conditional update so a concurrent
// delete of the same comment cannot fire twice.
func (s *Storage) DeleteComment(id domain.CommentId) error {
	res, err := s.db.Exec("UPDATE comments SET is_delete = true WHERE id = $1 AND is_delete = false", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewNotFound("komentar tidak ditemukan")
	}
	return nil
}
