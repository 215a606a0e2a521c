package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/service/utils"
)

type ThreadService interface {
	Post(owner domain.UserId, payload domain.PostThreadPayload) (domain.PostedThread, error)
	GetDetail(thread any) (domain.ThreadDetail, error)
}

// ThreadStorage is the persistence contract for threads. FindThreadById is
// an existence gate only; it returns NotFound when the id is unknown.
type ThreadStorage interface {
	AddThread(owner domain.UserId, thread domain.PostThread) (domain.PostedThread, error)
	FindThreadById(id domain.ThreadId) error
	GetDetailThreadById(id domain.ThreadId) (domain.ThreadOverview, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
	likes    LikeStorage
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, likes LikeStorage) *Thread {
	return &Thread{threads, comments, replies, likes}
}

func (s *Thread) Post(owner domain.UserId, payload domain.PostThreadPayload) (domain.PostedThread, error) {
	postThread, err := domain.NewPostThread(payload)
	if err != nil {
		return domain.PostedThread{}, err
	}
	postThread.Title = utils.SanitizeText(postThread.Title)
	postThread.Body = utils.SanitizeText(postThread.Body)

	return s.threads.AddThread(owner, postThread)
}

// GetDetail assembles the full read model for one thread: comments in
// creation order, each with its replies and like count. Soft-deleted
// comments and replies stay visible with their content redacted; deletion
// flags never reach the output.
func (s *Thread) GetDetail(thread any) (domain.ThreadDetail, error) {
	threadId, err := domain.ValidateDetailThreadPayload(thread)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	overview, err := s.threads.GetDetailThreadById(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.comments.GetCommentsByThreadId(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	commentIds := make([]domain.CommentId, len(comments))
	for i, c := range comments {
		commentIds[i] = c.Id
	}

	replies, err := s.replies.GetRepliesByCommentIds(commentIds)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	repliesByComment := make(map[domain.CommentId][]domain.ReplyDetail)
	for _, r := range replies {
		repliesByComment[r.Comment] = append(repliesByComment[r.Comment], domain.ReplyDetail{
			Id:       r.Id,
			Content:  r.DisplayContent(),
			Date:     r.Date,
			Username: r.Username,
		})
	}

	likeCounts, err := s.likes.CountLikesByThreadId(threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	details := make([]domain.CommentDetail, len(comments))
	for i, c := range comments {
		commentReplies := repliesByComment[c.Id]
		if commentReplies == nil {
			commentReplies = []domain.ReplyDetail{}
		}
		details[i] = domain.CommentDetail{
			Id:        c.Id,
			Username:  c.Username,
			Date:      c.Date,
			Content:   c.DisplayContent(),
			LikeCount: likeCounts[c.Id],
			Replies:   commentReplies,
		}
	}

	return domain.ThreadDetail{
		Id:       overview.Id,
		Title:    overview.Title,
		Body:     overview.Body,
		Date:     overview.Date,
		Username: overview.Username,
		Comments: details,
	}, nil
}
