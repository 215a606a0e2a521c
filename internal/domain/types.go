package domain

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	Username  = string
)

// User is the authenticated principal as stored and as carried in request
// context by the auth middleware.
type User struct {
	Id       UserId
	Username Username
	Password string // bcrypt hash
	Fullname string
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
