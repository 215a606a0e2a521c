// Package api holds the request and response DTOs of the HTTP surface.
package api

import "github.com/diskusi-dev/diskusi/internal/domain"

// Creation payload fields are `any` on purpose: presence and type are part
// of the entity validation contract, so decoding must not coerce them.

type PostThreadRequest struct {
	Title any `json:"title"`
	Body  any `json:"body"`
}

type PostCommentRequest struct {
	Content any `json:"content"`
}

type PostReplyRequest struct {
	Content any `json:"content"`
}

type RegisterUserRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
	Fullname any `json:"fullname"`
}

type LoginRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken any `json:"refreshToken"`
}

type PostThreadResponse struct {
	AddedThread domain.PostedThread `json:"addedThread"`
}

type DetailThreadResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type PostCommentResponse struct {
	AddedComment domain.PostedComment `json:"addedComment"`
}

type PostReplyResponse struct {
	AddedReply domain.PostedReply `json:"addedReply"`
}

type RegisterUserResponse struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
