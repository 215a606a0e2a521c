package domain

import (
	"time"
	"unicode/utf8"

	"github.com/diskusi-dev/diskusi/internal/errors"
)

// DeletedReplyMarker replaces the content of a soft-deleted reply in the
// thread detail view.
const DeletedReplyMarker = "**balasan telah dihapus**"

type PostReplyPayload struct {
	Content any
	Comment any
	Thread  any
}

// PostReply is a validated new-reply request.
type PostReply struct {
	Content string
	Comment CommentId
	Thread  ThreadId
}

func NewPostReply(payload PostReplyPayload) (PostReply, error) {
	if falsy(payload.Content) || falsy(payload.Comment) || falsy(payload.Thread) {
		return PostReply{}, errors.NewValidation("POST_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	fields, ok := allStrings(payload.Content, payload.Comment, payload.Thread)
	if !ok {
		return PostReply{}, errors.NewValidation("POST_REPLY.NOT_MEET_DATA_SPECIFICATION")
	}
	content, comment, thread := fields[0], fields[1], fields[2]
	if utf8.RuneCountInString(content) > MaxContentChars {
		return PostReply{}, errors.NewValidation("POST_REPLY.CONTENT_LIMIT_CHAR")
	}
	return PostReply{Content: content, Comment: comment, Thread: thread}, nil
}

type PostedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

func NewPostedReply(id ReplyId, content string, owner UserId) (PostedReply, error) {
	if id == "" || content == "" || owner == "" {
		return PostedReply{}, errors.NewValidation("POSTED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	return PostedReply{Id: id, Content: content, Owner: owner}, nil
}

// Reply is the internal row used by the delete guard sequence.
type Reply struct {
	Id        ReplyId
	Content   string
	Date      time.Time
	Comment   CommentId
	Owner     UserId
	IsDeleted bool
}

// ReplyWithAuthor is a reply row joined with its author, fetched in one
// batch across all comments of a thread.
type ReplyWithAuthor struct {
	Id        ReplyId
	Comment   CommentId
	Content   string
	Date      time.Time
	Username  Username
	IsDeleted bool
}

func (r ReplyWithAuthor) DisplayContent() string {
	if r.IsDeleted {
		return DeletedReplyMarker
	}
	return r.Content
}

// ReplyDetail is the public read model nested in CommentDetail.
type ReplyDetail struct {
	Id       ReplyId   `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}
