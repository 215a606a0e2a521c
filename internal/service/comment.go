package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/service/utils"
)

const (
	msgNotResourceOwner   = "anda tidak berhak mengakses resource ini!"
	msgCommentNotFound    = "komentar tidak ditemukan"
	msgCommentNotOnThread = "komentar tidak ditemukan pada thread yang dimaksud"
	msgReplyNotFound      = "reply tidak ditemukan"
	msgReplyNotOnComment  = "reply tidak terdapat pada komentar yang dimaksud"
)

type CommentService interface {
	Post(owner domain.UserId, payload domain.PostCommentPayload) (domain.PostedComment, error)
	Delete(owner domain.UserId, thread, comment any) error
	Like(owner domain.UserId, thread, comment any) error
}

type CommentStorage interface {
	AddComment(owner domain.UserId, comment domain.PostComment) (domain.PostedComment, error)
	FindCommentById(id domain.CommentId) (domain.Comment, error)
	GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentWithAuthor, error)
	VerifyCommentBelongsToThread(id domain.CommentId, threadId domain.ThreadId) error
	DeleteComment(id domain.CommentId) error
}

type LikeStorage interface {
	LikeComment(owner domain.UserId, comment domain.CommentId) error
	UnlikeComment(owner domain.UserId, comment domain.CommentId) error
	IsLiked(owner domain.UserId, comment domain.CommentId) (bool, error)
	CountLikesByThreadId(threadId domain.ThreadId) (map[domain.CommentId]int, error)
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
	likes    LikeStorage
}

func NewComment(threads ThreadStorage, comments CommentStorage, likes LikeStorage) *Comment {
	return &Comment{threads, comments, likes}
}

func (s *Comment) Post(owner domain.UserId, payload domain.PostCommentPayload) (domain.PostedComment, error) {
	postComment, err := domain.NewPostComment(payload)
	if err != nil {
		return domain.PostedComment{}, err
	}
	postComment.Content = utils.SanitizeText(postComment.Content)

	if err := s.threads.FindThreadById(postComment.Thread); err != nil {
		return domain.PostedComment{}, err
	}
	return s.comments.AddComment(owner, postComment)
}

// Delete soft-deletes a comment. Guard order is contractual: ownership is
// checked before thread membership, which is checked before the
// already-deleted state, so the caller always gets the most specific error.
func (s *Comment) Delete(owner domain.UserId, thread, comment any) error {
	threadId, commentId, err := domain.ValidateDeleteCommentPayload(thread, comment)
	if err != nil {
		return err
	}

	if err := s.threads.FindThreadById(threadId); err != nil {
		return err
	}
	c, err := s.comments.FindCommentById(commentId)
	if err != nil {
		return err
	}
	if c.Owner != owner {
		return errors.NewAuthorization(msgNotResourceOwner)
	}
	if c.Thread != threadId {
		return errors.NewNotFound(msgCommentNotOnThread)
	}
	if c.IsDeleted {
		return errors.NewNotFound(msgCommentNotFound)
	}
	return s.comments.DeleteComment(commentId)
}

// Like toggles the caller's like on a comment: exactly one of like/unlike
// fires per call. Any authenticated user may like any visible comment.
func (s *Comment) Like(owner domain.UserId, thread, comment any) error {
	threadId, commentId, err := domain.ValidateLikeCommentPayload(thread, comment)
	if err != nil {
		return err
	}

	if err := s.threads.FindThreadById(threadId); err != nil {
		return err
	}
	c, err := s.comments.FindCommentById(commentId)
	if err != nil {
		return err
	}
	if c.Thread != threadId {
		return errors.NewNotFound(msgCommentNotOnThread)
	}
	if c.IsDeleted {
		return errors.NewNotFound(msgCommentNotFound)
	}

	liked, err := s.likes.IsLiked(owner, commentId)
	if err != nil {
		return err
	}
	if liked {
		return s.likes.UnlikeComment(owner, commentId)
	}
	return s.likes.LikeComment(owner, commentId)
}
