// Package response содержит типы и функции для формирования JSON-ответов
// HTTP-обработчиков. Формы ответов повторяют контракт API:
// ошибки всегда возвращаются объектом {"error": "..."},
// успешные ответы имеют свою форму для каждой операции.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — структура ошибки, единая для всех неуспешных ответов.
type ErrorResponse struct {
	Error string `json:"error" example:"subscription not found"`
}

// CreatedResponse — ответ на успешное создание подписки,
// содержит присвоенный сервером идентификатор.
type CreatedResponse struct {
	Success bool `json:"success" example:"true"`
	ID      int  `json:"id" example:"1"`
}

// UpdatedResponse — ответ на успешное обновление подписки.
type UpdatedResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"subscription updated successfully"`
}

// DeletedResponse — ответ на успешное удаление подписки.
type DeletedResponse struct {
	Message string `json:"message" example:"Subscription deleted successfully"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Created возвращает ответ создания с присвоенным ID.
func Created(id int) CreatedResponse {
	return CreatedResponse{Success: true, ID: id}
}

// Updated возвращает ответ успешного обновления.
func Updated() UpdatedResponse {
	return UpdatedResponse{Success: true, Message: "subscription updated successfully"}
}

// Deleted возвращает ответ успешного удаления.
func Deleted() DeletedResponse {
	return DeletedResponse{Message: "Subscription deleted successfully"}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение превращается в человеко-читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
