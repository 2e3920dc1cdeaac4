// Package models содержит доменные структуры, описывающие подписку,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

// Subscription представляет собой основную модель подписки, хранимую в файле.
// Даты хранятся строками в том виде, в каком пришли от клиента.
// Поле ExpiryDate может содержать строку "NA" — это означает бессрочную подписку.
// Поле UserID непрозрачно: клиент может прислать как строку, так и число,
// значение сохраняется и возвращается без преобразования.
//
// Теги validate проверяются только на пути обновления записи,
// создание принимает любой набор полей (см. обработчики create и update).
type Subscription struct {
	Name       string `json:"name" validate:"required"`       // Название сервиса подписки
	Username   string `json:"username,omitempty"`             // Имя пользователя (опционально)
	StartDate  string `json:"start_date" validate:"required"` // Дата начала подписки
	ExpiryDate string `json:"expiry_date,omitempty"`          // Дата окончания или "NA"
	UserID     any    `json:"user_id" validate:"required"`    // Идентификатор пользователя
}

// NeverExpires значение-маркер поля ExpiryDate для бессрочной подписки.
const NeverExpires = "NA"
