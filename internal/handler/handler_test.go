package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/domain"
	mw "github.com/diskusi-dev/diskusi/internal/middleware"
)

// --- Service mocks ---

type MockThreadService struct {
	postFunc      func(owner domain.UserId, payload domain.PostThreadPayload) (domain.PostedThread, error)
	getDetailFunc func(thread any) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Post(owner domain.UserId, payload domain.PostThreadPayload) (domain.PostedThread, error) {
	if m.postFunc != nil {
		return m.postFunc(owner, payload)
	}
	return domain.PostedThread{Id: "thread-123", Title: "sebuah thread", Owner: owner}, nil
}

func (m *MockThreadService) GetDetail(thread any) (domain.ThreadDetail, error) {
	if m.getDetailFunc != nil {
		return m.getDetailFunc(thread)
	}
	return domain.ThreadDetail{Id: "thread-123", Comments: []domain.CommentDetail{}}, nil
}

type MockCommentService struct {
	postFunc   func(owner domain.UserId, payload domain.PostCommentPayload) (domain.PostedComment, error)
	deleteFunc func(owner domain.UserId, thread, comment any) error
	likeFunc   func(owner domain.UserId, thread, comment any) error
}

func (m *MockCommentService) Post(owner domain.UserId, payload domain.PostCommentPayload) (domain.PostedComment, error) {
	if m.postFunc != nil {
		return m.postFunc(owner, payload)
	}
	return domain.PostedComment{Id: "comment-123", Content: "sebuah komentar", Owner: owner}, nil
}

func (m *MockCommentService) Delete(owner domain.UserId, thread, comment any) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(owner, thread, comment)
	}
	return nil
}

func (m *MockCommentService) Like(owner domain.UserId, thread, comment any) error {
	if m.likeFunc != nil {
		return m.likeFunc(owner, thread, comment)
	}
	return nil
}

type MockReplyService struct {
	postFunc   func(owner domain.UserId, payload domain.PostReplyPayload) (domain.PostedReply, error)
	deleteFunc func(owner domain.UserId, thread, comment, reply any) error
}

func (m *MockReplyService) Post(owner domain.UserId, payload domain.PostReplyPayload) (domain.PostedReply, error) {
	if m.postFunc != nil {
		return m.postFunc(owner, payload)
	}
	return domain.PostedReply{Id: "reply-123", Content: "sebuah balasan", Owner: owner}, nil
}

func (m *MockReplyService) Delete(owner domain.UserId, thread, comment, reply any) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(owner, thread, comment, reply)
	}
	return nil
}

type MockAuthService struct {
	registerFunc func(payload domain.RegisterUserPayload) (domain.RegisteredUser, error)
	loginFunc    func(payload domain.UserLoginPayload) (domain.TokenPair, error)
	refreshFunc  func(refreshToken any) (string, error)
	logoutFunc   func(refreshToken any) error
}

func (m *MockAuthService) Register(payload domain.RegisterUserPayload) (domain.RegisteredUser, error) {
	if m.registerFunc != nil {
		return m.registerFunc(payload)
	}
	return domain.RegisteredUser{Id: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, nil
}

func (m *MockAuthService) Login(payload domain.UserLoginPayload) (domain.TokenPair, error) {
	if m.loginFunc != nil {
		return m.loginFunc(payload)
	}
	return domain.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
}

func (m *MockAuthService) Refresh(refreshToken any) (string, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(refreshToken)
	}
	return "access-token", nil
}

func (m *MockAuthService) Logout(refreshToken any) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(refreshToken)
	}
	return nil
}

// --- Helpers ---

type handlerMocks struct {
	thread  *MockThreadService
	comment *MockCommentService
	reply   *MockReplyService
	auth    *MockAuthService
}

// newTestRouter mounts the handler on the same route patterns as the real
// router, without the auth middleware. Tests inject the user directly.
func newTestRouter() (*chi.Mux, *handlerMocks) {
	mocks := &handlerMocks{
		thread:  &MockThreadService{},
		comment: &MockCommentService{},
		reply:   &MockReplyService{},
		auth:    &MockAuthService{},
	}
	h := New(mocks.thread, mocks.comment, mocks.reply, mocks.auth)

	r := chi.NewRouter()
	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)
	r.Put("/authentications", h.RefreshAuthentication)
	r.Delete("/authentications", h.Logout)
	r.Post("/threads", h.PostThread)
	r.Get("/threads/{threadId}", h.GetDetailThread)
	r.Post("/threads/{threadId}/comments", h.PostComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Put("/threads/{threadId}/comments/{commentId}/likes", h.LikeComment)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.PostReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r, mocks
}

func newRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

// asUser attaches an authenticated user the way the auth middleware does.
func asUser(r *http.Request, id domain.UserId) *http.Request {
	user := &domain.User{Id: id, Username: "dicoding"}
	return r.WithContext(context.WithValue(r.Context(), mw.UserClaimsKey, user))
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
