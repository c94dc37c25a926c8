package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (sql.ErrNoRows)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Briefs ---

// ErrBriefNotFound - бриф не найден ни по slug, ни по числовому id.
var ErrBriefNotFound = New(
	CodeNotFound,
	"brief",
	"Brief not found",
	http.StatusNotFound,
)

// ErrSlugTaken - slug уже занят другим брифом.
var ErrSlugTaken = New(
	CodeConflict,
	"brief",
	"Brief slug already in use",
	http.StatusConflict,
)

// --- Influencer applications ---

// ErrApplicationEmailExists - заявка с таким email уже существует.
var ErrApplicationEmailExists = New(
	CodeAlreadyExists,
	"influencer",
	"An application with this email already exists",
	http.StatusConflict,
)

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
