package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/HotelBookingService/internal/domain"
	userRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/user"
	"github.com/m04kA/HotelBookingService/internal/service/auth/models"
)

// Service регистрация, вход и выдача JWT
type Service struct {
	userRepo UserRepository
	secret   []byte
	tokenTTL time.Duration
	validate *validator.Validate
	now      func() time.Time
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		validate: validator.New(),
		now:      time.Now,
		logger:   logger,
	}
}

// Register создает учетную запись с ролью user и сразу выдает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenResponse, error) {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}
	passwordHash := string(hash)

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DisplayName:  req.FirstName + " " + req.LastName,
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("Register: user %s already exists", req.Email)
			return nil, ErrUserExists
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%d registered", user.ID)
	return s.tokenFor(user, "Register")
}

// Login проверяет пароль и выдает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email %s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	// У гостевых учетных записей пароля нет
	if user.PasswordHash == nil {
		s.logger.Warn("Login: user id=%d has no password", user.ID)
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return s.tokenFor(user, "Login")
}

// SeedAdmin создает администратора, если учетной записи с таким email еще нет
func (s *Service) SeedAdmin(ctx context.Context, email, username, password string) error {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("SeedAdmin: admin %s already exists", email)
		return nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return fmt.Errorf("%w: SeedAdmin - lookup: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: SeedAdmin - hash password: %v", ErrInternal, err)
	}
	passwordHash := string(hash)

	admin, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: &passwordHash,
		FirstName:    username,
		DisplayName:  username,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("%w: SeedAdmin - create: %v", ErrInternal, err)
	}

	s.logger.Info("SeedAdmin: admin id=%d created", admin.ID)
	return nil
}

func (s *Service) tokenFor(user *domain.User, op string) (*models.TokenResponse, error) {
	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("%s: failed to sign token: %v", op, err)
		return nil, fmt.Errorf("%w: %s - sign token: %v", ErrInternal, op, err)
	}

	return &models.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Role:      string(user.Role),
	}, nil
}
