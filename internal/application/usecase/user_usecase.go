package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
	"github.com/jhoicas/hotel-pos/pkg/logger"
	"github.com/jhoicas/hotel-pos/pkg/password"
)

// UserUseCase administración de cuentas (solo admin desde la API).
type UserUseCase struct {
	repo   repository.UserRepository
	hasher password.Hasher
	log    *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el hasher compartido con auth.
func NewUserUseCase(repo repository.UserRepository, hasher password.Hasher, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{repo: repo, hasher: hasher, log: log}
}

// AddUser crea una cuenta. Errores: ErrInvalidInput (campos vacíos), ErrDuplicateUsername,
// *StorageError para cualquier otro fallo de persistencia.
// El rol se guarda exactamente como llega; un rol desconocido solo genera un warning.
func (uc *UserUseCase) AddUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsKnownRole(in.Role) {
		uc.log.Warn().Str("username", in.Username).Str("role", in.Role).Msg("rol no reconocido, se guarda tal cual")
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, domain.NewStorageError(err)
	}
	uc.log.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
	return entityToUserResponse(user), nil
}

// List devuelve todas las cuentas (sin hashes).
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
