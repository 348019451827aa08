package announcements

import "errors"

var (
	// ErrAnnouncementNotFound возвращается, когда объявление не найдено
	ErrAnnouncementNotFound = errors.New("announcement not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
