package domain

import (
	"regexp"
	"unicode/utf8"

	"github.com/diskusi-dev/diskusi/internal/errors"
)

const MaxUsernameChars = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

type RegisterUserPayload struct {
	Username any
	Password any
	Fullname any
}

// RegisterUser is a validated registration request. The password is still
// plaintext here; hashing happens in the auth service.
type RegisterUser struct {
	Username Username
	Password string
	Fullname string
}

func NewRegisterUser(payload RegisterUserPayload) (RegisterUser, error) {
	if falsy(payload.Username) || falsy(payload.Password) || falsy(payload.Fullname) {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	fields, ok := allStrings(payload.Username, payload.Password, payload.Fullname)
	if !ok {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	username, password, fullname := fields[0], fields[1], fields[2]
	if utf8.RuneCountInString(username) > MaxUsernameChars {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.USERNAME_LIMIT_CHAR")
	}
	if !usernamePattern.MatchString(username) {
		return RegisterUser{}, errors.NewValidation("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
	}
	return RegisterUser{Username: username, Password: password, Fullname: fullname}, nil
}

// RegisteredUser is the persisted-and-returned shape of a new user.
type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

type UserLoginPayload struct {
	Username any
	Password any
}

type UserLogin struct {
	Username Username
	Password string
}

func NewUserLogin(payload UserLoginPayload) (UserLogin, error) {
	if falsy(payload.Username) || falsy(payload.Password) {
		return UserLogin{}, errors.NewValidation("USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	fields, ok := allStrings(payload.Username, payload.Password)
	if !ok {
		return UserLogin{}, errors.NewValidation("USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return UserLogin{Username: fields[0], Password: fields[1]}, nil
}
