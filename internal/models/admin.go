package models

// Administrator — запись из таблицы administrators.
// Создаётся вне приложения, здесь только читается. Пароль хранится bcrypt-хэшем.
type Administrator struct {
	ID           int
	Username     string
	PasswordHash string
}
