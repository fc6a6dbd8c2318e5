package rooms

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/infra/storage/images"
	roomRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/HotelBookingService/internal/service/rooms/models"
)

// Service сервис каталога номеров
type Service struct {
	roomRepo       RoomRepository
	bookingCounter BookingCounter
	images         ImageStore
	validate       *validator.Validate
	logger         Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(
	roomRepo RoomRepository,
	bookingCounter BookingCounter,
	images ImageStore,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:       roomRepo,
		bookingCounter: bookingCounter,
		images:         images,
		validate:       validator.New(),
		logger:         logger,
	}
}

// GetAll получает все номера
func (s *Service) GetAll(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.getRoom(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// Create создает номер
// image может быть nil, тогда номер создается без изображения
func (s *Service) Create(ctx context.Context, req *models.RoomRequest, image io.Reader) (*models.RoomResponse, error) {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	room := req.ToDomainRoom()

	if image != nil {
		url, err := s.saveImage(ctx, image, "Create")
		if err != nil {
			return nil, err
		}
		room.ImageURL = &url
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		s.dropImage(ctx, room.ImageURL)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room id=%d created", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update редактирует номер
// Изображение заменяется только если передан новый файл
func (s *Service) Update(ctx context.Context, id int64, req *models.RoomRequest, image io.Reader) (*models.RoomResponse, error) {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.getRoom(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	updated := req.ToDomainRoom()
	updated.ID = current.ID
	updated.ImageURL = current.ImageURL
	updated.CreatedAt = current.CreatedAt

	if image != nil {
		url, err := s.saveImage(ctx, image, "Update")
		if err != nil {
			return nil, err
		}
		updated.ImageURL = &url
	}

	if err := s.roomRepo.Update(ctx, updated); err != nil {
		if image != nil {
			s.dropImage(ctx, updated.ImageURL)
		}
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if image != nil {
		s.dropImage(ctx, current.ImageURL)
	}

	s.logger.Info("Update: room id=%d updated", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет номер, если на него не ссылается ни одно бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	room, err := s.getRoom(ctx, id, "Delete")
	if err != nil {
		return err
	}

	count, err := s.bookingCounter.CountByRoom(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings of room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - count bookings: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: room id=%d has %d bookings", id, count)
		return ErrRoomInUse
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomInUse):
			s.logger.Warn("Delete: room id=%d got bookings concurrently", id)
			return ErrRoomInUse
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.dropImage(ctx, room.ImageURL)
	s.logger.Info("Delete: room id=%d deleted", id)
	return nil
}

// Features возвращает удобства типа номера в фиксированном порядке
func (s *Service) Features(roomType string) ([]string, error) {
	features, ok := domain.FeaturesForType(roomType)
	if !ok {
		return nil, ErrUnknownRoomType
	}
	return features, nil
}

func (s *Service) getRoom(ctx context.Context, id int64, op string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}

func (s *Service) saveImage(ctx context.Context, image io.Reader, op string) (string, error) {
	url, err := s.images.Save(ctx, image)
	if err != nil {
		if errors.Is(err, images.ErrUnsupportedType) || errors.Is(err, images.ErrTooLarge) {
			s.logger.Warn("%s: image rejected: %v", op, err)
			return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		s.logger.Error("%s: failed to save image: %v", op, err)
		return "", fmt.Errorf("%w: %s - save image: %v", ErrInternal, op, err)
	}
	return url, nil
}

// dropImage удаляет файл изображения; ошибка только логируется
func (s *Service) dropImage(ctx context.Context, url *string) {
	if url == nil {
		return
	}
	if err := s.images.Remove(ctx, *url); err != nil {
		s.logger.Warn("failed to remove image %s: %v", *url, err)
	}
}
