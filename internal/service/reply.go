package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/service/utils"
)

type ReplyService interface {
	Post(owner domain.UserId, payload domain.PostReplyPayload) (domain.PostedReply, error)
	Delete(owner domain.UserId, thread, comment, reply any) error
}

type ReplyStorage interface {
	AddReply(owner domain.UserId, reply domain.PostReply) (domain.PostedReply, error)
	FindReplyById(id domain.ReplyId) (domain.Reply, error)
	GetRepliesByCommentIds(ids []domain.CommentId) ([]domain.ReplyWithAuthor, error)
	DeleteReply(id domain.ReplyId) error
}

type Reply struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Reply {
	return &Reply{threads, comments, replies}
}

func (s *Reply) Post(owner domain.UserId, payload domain.PostReplyPayload) (domain.PostedReply, error) {
	postReply, err := domain.NewPostReply(payload)
	if err != nil {
		return domain.PostedReply{}, err
	}
	postReply.Content = utils.SanitizeText(postReply.Content)

	if err := s.threads.FindThreadById(postReply.Thread); err != nil {
		return domain.PostedReply{}, err
	}
	if _, err := s.comments.FindCommentById(postReply.Comment); err != nil {
		return domain.PostedReply{}, err
	}
	if err := s.comments.VerifyCommentBelongsToThread(postReply.Comment, postReply.Thread); err != nil {
		return domain.PostedReply{}, err
	}
	return s.replies.AddReply(owner, postReply)
}

// Delete soft-deletes a reply, mirroring the comment guard order one level
// down: the comment chain is verified first, then reply ownership, then
// reply-comment membership, then the already-deleted state.
func (s *Reply) Delete(owner domain.UserId, thread, comment, reply any) error {
	threadId, commentId, replyId, err := domain.ValidateDeleteReplyPayload(thread, comment, reply)
	if err != nil {
		return err
	}

	if err := s.threads.FindThreadById(threadId); err != nil {
		return err
	}
	if _, err := s.comments.FindCommentById(commentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentBelongsToThread(commentId, threadId); err != nil {
		return err
	}

	r, err := s.replies.FindReplyById(replyId)
	if err != nil {
		return err
	}
	if r.Owner != owner {
		return errors.NewAuthorization(msgNotResourceOwner)
	}
	if r.Comment != commentId {
		return errors.NewNotFound(msgReplyNotOnComment)
	}
	if r.IsDeleted {
		return errors.NewNotFound(msgReplyNotFound)
	}
	return s.replies.DeleteReply(replyId)
}
