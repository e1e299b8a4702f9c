package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"N8NAdmin/internal/models"
)

// AdminStore читает таблицу administrators. Только чтение.
type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

// FindByUsername возвращает администратора или nil, если строки нет.
// Ошибка — только при сбое БД, не при отсутствии записи.
func (s *AdminStore) FindByUsername(ctx context.Context, username string) (*models.Administrator, error) {
	var a models.Administrator
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM administrators WHERE username = $1`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	return &a, nil
}
