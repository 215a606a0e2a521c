package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddUser(user domain.User) (domain.RegisteredUser, error) {
	id := s.generateId("user")

	var registered domain.RegisteredUser
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, user.Username, user.Password, user.Fullname).Scan(&registered.Id, &registered.Username, &registered.Fullname)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.RegisteredUser{}, &internal_errors.ErrorWithStatusCode{Message: "username tidak tersedia", StatusCode: http.StatusBadRequest}
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return registered, nil
}

func (s *Storage) UserByUsername(username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewNotFound("user tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *Storage) AddRefreshToken(token string) error {
	if _, err := s.db.Exec("INSERT INTO authentications (token) VALUES ($1)", token); err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}
	return nil
}

func (s *Storage) CheckRefreshToken(token string) error {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM authentications WHERE token = $1)", token).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !exists {
		return &internal_errors.ErrorWithStatusCode{Message: "refresh token tidak ditemukan di database", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func (s *Storage) DeleteRefreshToken(token string) error {
	if _, err := s.db.Exec("DELETE FROM authentications WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
