package images

import "errors"

var (
	// ErrUnsupportedType возвращается, если файл не является изображением поддерживаемого формата
	ErrUnsupportedType = errors.New("images.store: unsupported image type")

	// ErrTooLarge возвращается, если файл превышает допустимый размер
	ErrTooLarge = errors.New("images.store: image is too large")

	// ErrWriteFile возвращается при ошибке записи файла на диск
	ErrWriteFile = errors.New("images.store: failed to write file")
)
