package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddThread(owner domain.UserId, thread domain.PostThread) (domain.PostedThread, error) {
	id := s.generateId("thread")

	var insertedId domain.ThreadId
	var title string
	var insertedOwner domain.UserId
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, owner).Scan(&insertedId, &title, &insertedOwner)
	if err != nil {
		return domain.PostedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewPostedThread(insertedId, title, insertedOwner)
}

func (s *Storage) FindThreadById(id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread existence: %w", err)
	}
	if !exists {
		return internal_errors.NewNotFound("thread id tidak valid")
	}
	return nil
}

func (s *Storage) GetDetailThreadById(id domain.ThreadId) (domain.ThreadOverview, error) {
	var overview domain.ThreadOverview
	err := s.db.QueryRow(`
        SELECT threads.id, threads.title, threads.body, threads.date, users.username
        FROM threads
        INNER JOIN users ON threads.owner = users.id
        WHERE threads.id = $1
    `, id).Scan(&overview.Id, &overview.Title, &overview.Body, &overview.Date, &overview.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadOverview{}, internal_errors.NewNotFound("thread tidak ditemukan")
		}
		return domain.ThreadOverview{}, fmt.Errorf("failed to fetch thread detail: %w", err)
	}
	return overview, nil
}
