package smsgate

import "errors"

var (
	// ErrNotConfigured возвращается, когда учётные данные шлюза не заданы
	ErrNotConfigured = errors.New("smsgate client: credentials not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("smsgate client: invalid input")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("smsgate client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("smsgate client: invalid response")
)
