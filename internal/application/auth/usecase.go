package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
	"github.com/jhoicas/Calificaciones-api/pkg/jwt"
	"github.com/jhoicas/Calificaciones-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta pública. El rol siempre es "user": las cuentas
// store_owner y admin solo se crean por el camino de administración.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validateProfile(in.Name, in.Address); err != nil {
		return nil, err
	}
	if !password.ValidatePolicy(in.Password) {
		return nil, fmt.Errorf("%w: la contraseña debe tener 8-16 caracteres, una mayúscula y un símbolo (!@#$&*)", domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Address:      in.Address,
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Tanto email desconocido como contraseña incorrecta devuelven ErrUnauthorized
// para no revelar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword verifica la contraseña actual y la reemplaza por la nueva.
// La contraseña actual incorrecta es un error de validación (400), no un 401.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if !password.ValidatePolicy(in.NewPassword) {
		return fmt.Errorf("%w: la contraseña debe tener 8-16 caracteres, una mayúscula y un símbolo (!@#$&*)", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !password.Verify(in.CurrentPassword, user.PasswordHash) {
		return domain.ErrWrongPassword
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(userID, hash)
}

// validateProfile aplica las reglas de perfil del registro: nombre 20-60
// caracteres, dirección hasta 400.
func validateProfile(name, address string) error {
	if l := len(name); l < 20 || l > 60 {
		return fmt.Errorf("%w: el nombre debe tener entre 20 y 60 caracteres", domain.ErrInvalidInput)
	}
	if len(address) > 400 {
		return fmt.Errorf("%w: la dirección no puede exceder 400 caracteres", domain.ErrInvalidInput)
	}
	return nil
}

// ToUserResponse convierte la entidad a su DTO de salida (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
