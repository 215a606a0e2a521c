package service

import (
	"sync"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// --- Mocks ---
// Each mock delegates to an optional func field and falls back to a
// plausible default so tests only override what they assert on.

type MockThreadStorage struct {
	addThreadFunc           func(owner domain.UserId, thread domain.PostThread) (domain.PostedThread, error)
	findThreadByIdFunc      func(id domain.ThreadId) error
	getDetailThreadByIdFunc func(id domain.ThreadId) (domain.ThreadOverview, error)
}

func (m *MockThreadStorage) AddThread(owner domain.UserId, thread domain.PostThread) (domain.PostedThread, error) {
	if m.addThreadFunc != nil {
		return m.addThreadFunc(owner, thread)
	}
	return domain.PostedThread{Id: "thread-123", Title: thread.Title, Owner: owner}, nil
}

func (m *MockThreadStorage) FindThreadById(id domain.ThreadId) error {
	if m.findThreadByIdFunc != nil {
		return m.findThreadByIdFunc(id)
	}
	return nil
}

func (m *MockThreadStorage) GetDetailThreadById(id domain.ThreadId) (domain.ThreadOverview, error) {
	if m.getDetailThreadByIdFunc != nil {
		return m.getDetailThreadByIdFunc(id)
	}
	return domain.ThreadOverview{Id: id, Title: "a title", Body: "a body", Username: "dicoding"}, nil
}

type MockCommentStorage struct {
	addCommentFunc                   func(owner domain.UserId, comment domain.PostComment) (domain.PostedComment, error)
	findCommentByIdFunc              func(id domain.CommentId) (domain.Comment, error)
	getCommentsByThreadIdFunc        func(threadId domain.ThreadId) ([]domain.CommentWithAuthor, error)
	verifyCommentBelongsToThreadFunc func(id domain.CommentId, threadId domain.ThreadId) error
	deleteCommentFunc                func(id domain.CommentId) error

	mu                  sync.Mutex
	deleteCommentCalled bool
	deleteCommentIdArg  domain.CommentId
}

func (m *MockCommentStorage) AddComment(owner domain.UserId, comment domain.PostComment) (domain.PostedComment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(owner, comment)
	}
	return domain.PostedComment{Id: "comment-123", Content: comment.Content, Owner: owner}, nil
}

func (m *MockCommentStorage) FindCommentById(id domain.CommentId) (domain.Comment, error) {
	if m.findCommentByIdFunc != nil {
		return m.findCommentByIdFunc(id)
	}
	return domain.Comment{Id: id, Content: "a comment", Thread: "thread-123", Owner: "user-123"}, nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentWithAuthor, error) {
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) VerifyCommentBelongsToThread(id domain.CommentId, threadId domain.ThreadId) error {
	if m.verifyCommentBelongsToThreadFunc != nil {
		return m.verifyCommentBelongsToThreadFunc(id, threadId)
	}
	return nil
}

func (m *MockCommentStorage) DeleteComment(id domain.CommentId) error {
	m.mu.Lock()
	m.deleteCommentCalled = true
	m.deleteCommentIdArg = id
	m.mu.Unlock()

	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

type MockReplyStorage struct {
	addReplyFunc               func(owner domain.UserId, reply domain.PostReply) (domain.PostedReply, error)
	findReplyByIdFunc          func(id domain.ReplyId) (domain.Reply, error)
	getRepliesByCommentIdsFunc func(ids []domain.CommentId) ([]domain.ReplyWithAuthor, error)
	deleteReplyFunc            func(id domain.ReplyId) error

	mu                sync.Mutex
	deleteReplyCalled bool
	deleteReplyIdArg  domain.ReplyId
}

func (m *MockReplyStorage) AddReply(owner domain.UserId, reply domain.PostReply) (domain.PostedReply, error) {
	if m.addReplyFunc != nil {
		return m.addReplyFunc(owner, reply)
	}
	return domain.PostedReply{Id: "reply-123", Content: reply.Content, Owner: owner}, nil
}

func (m *MockReplyStorage) FindReplyById(id domain.ReplyId) (domain.Reply, error) {
	if m.findReplyByIdFunc != nil {
		return m.findReplyByIdFunc(id)
	}
	return domain.Reply{Id: id, Content: "a reply", Comment: "comment-123", Owner: "user-123"}, nil
}

func (m *MockReplyStorage) GetRepliesByCommentIds(ids []domain.CommentId) ([]domain.ReplyWithAuthor, error) {
	if m.getRepliesByCommentIdsFunc != nil {
		return m.getRepliesByCommentIdsFunc(ids)
	}
	return nil, nil
}

func (m *MockReplyStorage) DeleteReply(id domain.ReplyId) error {
	m.mu.Lock()
	m.deleteReplyCalled = true
	m.deleteReplyIdArg = id
	m.mu.Unlock()

	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(id)
	}
	return nil
}

type MockLikeStorage struct {
	likeCommentFunc          func(owner domain.UserId, comment domain.CommentId) error
	unlikeCommentFunc        func(owner domain.UserId, comment domain.CommentId) error
	isLikedFunc              func(owner domain.UserId, comment domain.CommentId) (bool, error)
	countLikesByThreadIdFunc func(threadId domain.ThreadId) (map[domain.CommentId]int, error)

	mu           sync.Mutex
	likeCalled   bool
	unlikeCalled bool
}

func (m *MockLikeStorage) LikeComment(owner domain.UserId, comment domain.CommentId) error {
	m.mu.Lock()
	m.likeCalled = true
	m.mu.Unlock()

	if m.likeCommentFunc != nil {
		return m.likeCommentFunc(owner, comment)
	}
	return nil
}

func (m *MockLikeStorage) UnlikeComment(owner domain.UserId, comment domain.CommentId) error {
	m.mu.Lock()
	m.unlikeCalled = true
	m.mu.Unlock()

	if m.unlikeCommentFunc != nil {
		return m.unlikeCommentFunc(owner, comment)
	}
	return nil
}

func (m *MockLikeStorage) IsLiked(owner domain.UserId, comment domain.CommentId) (bool, error) {
	if m.isLikedFunc != nil {
		return m.isLikedFunc(owner, comment)
	}
	return false, nil
}

func (m *MockLikeStorage) CountLikesByThreadId(threadId domain.ThreadId) (map[domain.CommentId]int, error) {
	if m.countLikesByThreadIdFunc != nil {
		return m.countLikesByThreadIdFunc(threadId)
	}
	return map[domain.CommentId]int{}, nil
}

type MockAuthStorage struct {
	addUserFunc            func(user domain.User) (domain.RegisteredUser, error)
	userByUsernameFunc     func(username domain.Username) (domain.User, error)
	addRefreshTokenFunc    func(token string) error
	checkRefreshTokenFunc  func(token string) error
	deleteRefreshTokenFunc func(token string) error
}

func (m *MockAuthStorage) AddUser(user domain.User) (domain.RegisteredUser, error) {
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockAuthStorage) UserByUsername(username domain.Username) (domain.User, error) {
	if m.userByUsernameFunc != nil {
		return m.userByUsernameFunc(username)
	}
	return domain.User{Id: "user-123", Username: username}, nil
}

func (m *MockAuthStorage) AddRefreshToken(token string) error {
	if m.addRefreshTokenFunc != nil {
		return m.addRefreshTokenFunc(token)
	}
	return nil
}

func (m *MockAuthStorage) CheckRefreshToken(token string) error {
	if m.checkRefreshTokenFunc != nil {
		return m.checkRefreshTokenFunc(token)
	}
	return nil
}

func (m *MockAuthStorage) DeleteRefreshToken(token string) error {
	if m.deleteRefreshTokenFunc != nil {
		return m.deleteRefreshTokenFunc(token)
	}
	return nil
}

type MockTokens struct {
	newAccessTokenFunc     func(user domain.User) (string, error)
	newRefreshTokenFunc    func(user domain.User) (string, error)
	decodeRefreshTokenFunc func(tokenString string) (domain.User, error)
}

func (m *MockTokens) NewAccessToken(user domain.User) (string, error) {
	if m.newAccessTokenFunc != nil {
		return m.newAccessTokenFunc(user)
	}
	return "access-token", nil
}

func (m *MockTokens) NewRefreshToken(user domain.User) (string, error) {
	if m.newRefreshTokenFunc != nil {
		return m.newRefreshTokenFunc(user)
	}
	return "refresh-token", nil
}

func (m *MockTokens) DecodeRefreshToken(tokenString string) (domain.User, error) {
	if m.decodeRefreshTokenFunc != nil {
		return m.decodeRefreshTokenFunc(tokenString)
	}
	return domain.User{Id: "user-123", Username: "dicoding"}, nil
}
