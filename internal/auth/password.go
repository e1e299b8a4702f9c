package auth

import (
	"fmt"

	"N8NAdmin/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Verifier сверяет пароль с bcrypt-хэшем администратора.
type Verifier struct {
	// хэш-заглушка для неизвестных логинов: сравнение идёт всегда,
	// чтобы время ответа не выдавало, существует ли пользователь
	dummyHash []byte
}

// NewVerifier генерирует хэш-заглушку с заданной стоимостью.
// Стоимость должна совпадать с той, что у реальных хэшей в базе (обычно bcrypt.DefaultCost).
func NewVerifier(cost int) (*Verifier, error) {
	h, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	if err != nil {
		return nil, fmt.Errorf("auth: dummy hash: %w", err)
	}
	return &Verifier{dummyHash: h}, nil
}

// Verify: true только если admin найден и пароль подходит.
func (v *Verifier) Verify(admin *models.Administrator, password string) bool {
	if admin == nil {
		_ = bcrypt.CompareHashAndPassword(v.dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}
