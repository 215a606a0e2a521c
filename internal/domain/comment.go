package domain

import (
	"time"
	"unicode/utf8"

	"github.com/diskusi-dev/diskusi/internal/errors"
)

const MaxContentChars = 250

// DeletedCommentMarker replaces the content of a soft-deleted comment in
// the thread detail view.
const DeletedCommentMarker = "**komentar telah dihapus**"

type PostCommentPayload struct {
	Content any
	Thread  any
}

// PostComment is a validated new-comment request.
type PostComment struct {
	Content string
	Thread  ThreadId
}

func NewPostComment(payload PostCommentPayload) (PostComment, error) {
	if falsy(payload.Content) || falsy(payload.Thread) {
		return PostComment{}, errors.NewValidation("POST_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	fields, ok := allStrings(payload.Content, payload.Thread)
	if !ok {
		return PostComment{}, errors.NewValidation("POST_COMMENT.NOT_MEET_DATA_SPECIFICATION")
	}
	content, thread := fields[0], fields[1]
	if utf8.RuneCountInString(content) > MaxContentChars {
		return PostComment{}, errors.NewValidation("POST_COMMENT.CONTENT_LIMIT_CHAR")
	}
	return PostComment{Content: content, Thread: thread}, nil
}

type PostedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

func NewPostedComment(id CommentId, content string, owner UserId) (PostedComment, error) {
	if id == "" || content == "" || owner == "" {
		return PostedComment{}, errors.NewValidation("POSTED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	return PostedComment{Id: id, Content: content, Owner: owner}, nil
}

// Comment is the internal row used by the delete/like guard sequences.
type Comment struct {
	Id        CommentId
	Content   string
	Date      time.Time
	Thread    ThreadId
	Owner     UserId
	IsDeleted bool
}

// CommentWithAuthor is a comment row joined with its author, as read for
// the thread detail view. Soft-deleted rows are included.
type CommentWithAuthor struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}

// DisplayContent applies tombstone redaction.
func (c CommentWithAuthor) DisplayContent() string {
	if c.IsDeleted {
		return DeletedCommentMarker
	}
	return c.Content
}

// CommentDetail is the public read model nested in ThreadDetail.
type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}
