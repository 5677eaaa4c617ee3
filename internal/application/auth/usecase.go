package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
	"github.com/jhoicas/hotel-pos/pkg/jwt"
	"github.com/jhoicas/hotel-pos/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Identity identidad de sesión explícita que los handlers pasan a los servicios.
type Identity struct {
	UserID    string
	Username  string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenRevoker almacena los jti revocados (logout) hasta su vencimiento.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthUseCase casos de uso de autenticación: login, logout y validación de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	revoker  TokenRevoker
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher password.Hasher, revoker TokenRevoker, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, revoker: revoker, jwtCfg: jwtCfg}
}

// Authenticate verifica username/password. Devuelve (nil, nil) si no coinciden, sin distinguir
// usuario inexistente de contraseña incorrecta. Solo hay error si falla el almacenamiento.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, plain string) (*Identity, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	if user == nil || !uc.hasher.Verify(user.PasswordHash, plain) {
		return nil, nil
	}
	return &Identity{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Login verifica credenciales, genera JWT y retorna token + identidad.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	identity, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, identity.UserID, identity.Username, identity.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      ToIdentityResponse(identity),
	}, nil
}

// ValidateToken parsea el token y rechaza los revocados.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenString string) (*Identity, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if uc.revoker != nil && claims.TokenID() != "" {
		revoked, err := uc.revoker.IsRevoked(ctx, claims.TokenID())
		if err != nil {
			return nil, fmt.Errorf("auth: consultar revocación: %w", err)
		}
		if revoked {
			return nil, domain.ErrUnauthorized
		}
	}
	return &Identity{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Role:      claims.Role,
		TokenID:   claims.TokenID(),
		ExpiresAt: claims.ExpiresAtTime(),
	}, nil
}

// Logout revoca el token de la sesión hasta su vencimiento.
func (uc *AuthUseCase) Logout(ctx context.Context, identity Identity) error {
	if uc.revoker == nil || identity.TokenID == "" {
		return nil
	}
	ttl := time.Until(identity.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return uc.revoker.Revoke(ctx, identity.TokenID, ttl)
}

// ToIdentityResponse proyecta la identidad a su DTO.
func ToIdentityResponse(i *Identity) dto.IdentityResponse {
	if i == nil {
		return dto.IdentityResponse{}
	}
	return dto.IdentityResponse{UserID: i.UserID, Username: i.Username, Role: i.Role}
}
