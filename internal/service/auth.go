package service

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/errors"
)

type AuthService interface {
	Register(payload domain.RegisterUserPayload) (domain.RegisteredUser, error)
	Login(payload domain.UserLoginPayload) (domain.TokenPair, error)
	Refresh(refreshToken any) (string, error)
	Logout(refreshToken any) error
}

type AuthStorage interface {
	AddUser(user domain.User) (domain.RegisteredUser, error)
	UserByUsername(username domain.Username) (domain.User, error)
	AddRefreshToken(token string) error
	CheckRefreshToken(token string) error
	DeleteRefreshToken(token string) error
}

// Tokens is the subset of the jwt service the auth use cases need.
type Tokens interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeRefreshToken(tokenString string) (domain.User, error)
}

type Auth struct {
	storage AuthStorage
	tokens  Tokens
}

func NewAuth(storage AuthStorage, tokens Tokens) *Auth {
	return &Auth{storage, tokens}
}

func (a *Auth) Register(payload domain.RegisterUserPayload) (domain.RegisteredUser, error) {
	registerUser, err := domain.NewRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registerUser.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisteredUser{}, err
	}

	return a.storage.AddUser(domain.User{
		Username: registerUser.Username,
		Password: string(hash),
		Fullname: registerUser.Fullname,
	})
}

func (a *Auth) Login(payload domain.UserLoginPayload) (domain.TokenPair, error) {
	login, err := domain.NewUserLogin(payload)
	if err != nil {
		return domain.TokenPair{}, err
	}

	user, err := a.storage.UserByUsername(login.Username)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.TokenPair{}, badCredentials()
		}
		return domain.TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		return domain.TokenPair{}, badCredentials()
	}

	access, err := a.tokens.NewAccessToken(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := a.tokens.NewRefreshToken(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := a.storage.AddRefreshToken(refresh); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (a *Auth) Refresh(refreshToken any) (string, error) {
	token, err := domain.ValidateRefreshTokenPayload("REFRESH_AUTHENTICATION_USE_CASE", refreshToken)
	if err != nil {
		return "", err
	}

	user, err := a.tokens.DecodeRefreshToken(token)
	if err != nil {
		return "", err
	}
	if err := a.storage.CheckRefreshToken(token); err != nil {
		return "", err
	}
	return a.tokens.NewAccessToken(user)
}

func (a *Auth) Logout(refreshToken any) error {
	token, err := domain.ValidateRefreshTokenPayload("DELETE_AUTHENTICATION_USE_CASE", refreshToken)
	if err != nil {
		return err
	}

	if err := a.storage.CheckRefreshToken(token); err != nil {
		return err
	}
	return a.storage.DeleteRefreshToken(token)
}

func badCredentials() error {
	return &errors.ErrorWithStatusCode{Message: "kredensial yang Anda masukkan salah", StatusCode: http.StatusUnauthorized}
}
