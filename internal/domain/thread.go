package domain

import (
	"time"
	"unicode/utf8"

	"github.com/diskusi-dev/diskusi/internal/errors"
)

const (
	MaxTitleChars = 70
	MaxBodyChars  = 250
)

// PostThreadPayload carries the raw decoded request body. Fields stay `any`
// until NewPostThread has checked presence, then type, then length.
type PostThreadPayload struct {
	Title any
	Body  any
}

// PostThread is a validated new-thread request.
type PostThread struct {
	Title string
	Body  string
}

func NewPostThread(payload PostThreadPayload) (PostThread, error) {
	if falsy(payload.Title) || falsy(payload.Body) {
		return PostThread{}, errors.NewValidation("POST_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	fields, ok := allStrings(payload.Title, payload.Body)
	if !ok {
		return PostThread{}, errors.NewValidation("POST_THREAD.NOT_MEET_DATA_SPECIFICATION")
	}
	title, body := fields[0], fields[1]
	if utf8.RuneCountInString(title) > MaxTitleChars {
		return PostThread{}, errors.NewValidation("POST_THREAD.TITLE_LIMIT_CHAR")
	}
	if utf8.RuneCountInString(body) > MaxBodyChars {
		return PostThread{}, errors.NewValidation("POST_THREAD.BODY_LIMIT_CHAR")
	}
	return PostThread{Title: title, Body: body}, nil
}

// PostedThread is the persisted-and-returned shape of a new thread.
type PostedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

func NewPostedThread(id ThreadId, title string, owner UserId) (PostedThread, error) {
	if id == "" || title == "" || owner == "" {
		return PostedThread{}, errors.NewValidation("POSTED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	return PostedThread{Id: id, Title: title, Owner: owner}, nil
}

// ThreadOverview is what the storage layer returns for the detail view,
// before comments and replies are attached.
type ThreadOverview struct {
	Id       ThreadId
	Title    string
	Body     string
	Date     time.Time
	Username Username
}

// ThreadDetail is the public read model for GET /threads/{threadId}.
// Deletion flags never appear here; deleted content is pre-redacted.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username Username        `json:"username"`
	Comments []CommentDetail `json:"comments"`
}
