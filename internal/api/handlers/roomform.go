package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/HotelBookingService/internal/service/rooms/models"
)

// roomFormMemory часть multipart формы, которая держится в памяти
const roomFormMemory = 8 << 20

// ReadRoomForm читает данные номера из multipart формы (поле image необязательно)
// или из JSON тела. Вызывающий закрывает возвращенный файл, если он не nil
func ReadRoomForm(r *http.Request) (*models.RoomRequest, io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req models.RoomRequest
		if err := DecodeJSON(r, &req); err != nil {
			return nil, nil, err
		}
		return &req, nil, nil
	}

	if err := r.ParseMultipartForm(roomFormMemory); err != nil {
		return nil, nil, err
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(r.FormValue("capacity")))
	if err != nil {
		return nil, nil, errors.New("capacity must be a number")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("pricePerNight")), 64)
	if err != nil {
		return nil, nil, errors.New("pricePerNight must be a number")
	}

	req := &models.RoomRequest{
		Name:          r.FormValue("name"),
		Type:          r.FormValue("type"),
		Capacity:      capacity,
		PricePerNight: price,
		Description:   r.FormValue("description"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil, nil
	case err != nil:
		return nil, nil, err
	case header.Size == 0:
		// пустое поле файла в форме означает "без изображения"
		_ = file.Close()
		return req, nil, nil
	}

	return req, file, nil
}

// DecodeJSONString читает тело, состоящее из одной JSON строки, например "suite"
func DecodeJSONString(r *http.Request) (string, error) {
	var s string
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&s); err != nil {
		return "", err
	}
	return s, nil
}
