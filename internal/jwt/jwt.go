package jwt

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

type TokenService interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeAccessToken(tokenString string) (domain.User, error)
	DecodeRefreshToken(tokenString string) (domain.User, error)
}

type Jwt struct {
	accessKey  string
	refreshKey string
	accessTTL  time.Duration
}

func New(accessKey, refreshKey string, accessTTL time.Duration) TokenService {
	return &Jwt{accessKey: accessKey, refreshKey: refreshKey, accessTTL: accessTTL}
}

func (j *Jwt) NewAccessToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":      user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(j.accessTTL).Unix(),
	}
	return j.sign(claims, j.accessKey)
}

// Refresh tokens carry no expiry; they stay valid until logged out, which
// removes them from storage.
func (j *Jwt) NewRefreshToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":      user.Id,
		"username": user.Username,
	}
	return j.sign(claims, j.refreshKey)
}

func (j *Jwt) DecodeAccessToken(tokenString string) (domain.User, error) {
	return j.decode(tokenString, j.accessKey)
}

func (j *Jwt) DecodeRefreshToken(tokenString string) (domain.User, error) {
	user, err := j.decode(tokenString, j.refreshKey)
	if err != nil {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "refresh token tidak valid", StatusCode: http.StatusBadRequest}
	}
	return user, nil
}

func (j *Jwt) sign(claims jwt.MapClaims, key string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(key))
	if err != nil {
		logger.Log.Error("failed to sign token", "err", err)
		return "", &internal_errors.ErrorWithStatusCode{Message: "Can't create token", StatusCode: http.StatusInternalServerError}
	}
	return tokenString, nil
}

func (j *Jwt) decode(tokenString, key string) (domain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Unexpected signing method", StatusCode: http.StatusUnauthorized}
		}
		return []byte(key), nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	uid, ok := claims["uid"].(string)
	if !ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	username, ok := claims["username"].(string)
	if !ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	return domain.User{Id: uid, Username: username}, nil
}
