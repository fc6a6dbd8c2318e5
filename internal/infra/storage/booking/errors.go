package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlap возвращается, когда база отклонила пересекающееся бронирование (exclusion constraint)
	ErrOverlap = errors.New("booking.repository: booking overlaps an active booking of the room")

	// ErrReferenceNotFound возвращается, когда номер или пользователь, на которых ссылается бронирование, не существуют
	ErrReferenceNotFound = errors.New("booking.repository: referenced room or user not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
