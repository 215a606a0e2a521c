package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddReply(owner domain.UserId, reply domain.PostReply) (domain.PostedReply, error) {
	id := s.generateId("reply")

	var insertedId domain.ReplyId
	var content string
	var insertedOwner domain.UserId
	err := s.db.QueryRow(`
        INSERT INTO replies (id, content, comment, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, reply.Content, reply.Comment, owner).Scan(&insertedId, &content, &insertedOwner)
	if err != nil {
		return domain.PostedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewPostedReply(insertedId, content, insertedOwner)
}

func (s *Storage) FindReplyById(id domain.ReplyId) (domain.Reply, error) {
	var r domain.Reply
	err := s.db.QueryRow(`
        SELECT id, content, date, comment, owner, is_delete
        FROM replies
        WHERE id = $1
    `, id).Scan(&r.Id, &r.Content, &r.Date, &r.Comment, &r.Owner, &r.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, internal_errors.NewNotFound("reply tidak ditemukan")
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch reply: %w", err)
	}
	return r, nil
}

// GetRepliesByCommentIds fetches the replies of many comments in one round
// trip, ordered by creation time. Soft-deleted rows are included.
func (s *Storage) GetRepliesByCommentIds(ids []domain.CommentId) ([]domain.ReplyWithAuthor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`
        SELECT replies.id, replies.comment, replies.content, replies.date, users.username, replies.is_delete
        FROM replies
        INNER JOIN users ON replies.owner = users.id
        WHERE replies.comment = ANY($1)
        ORDER BY replies.date ASC
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.ReplyWithAuthor
	for rows.Next() {
		var r domain.ReplyWithAuthor
		if err := rows.Scan(&r.Id, &r.Comment, &r.Content, &r.Date, &r.Username, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

func (s *Storage) DeleteReply(id domain.ReplyId) error {
	res, err := s.db.Exec("UPDATE replies SET is_delete = true WHERE id = $1 AND is_delete = false", id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewNotFound("reply tidak ditemukan")
	}
	return nil
}
