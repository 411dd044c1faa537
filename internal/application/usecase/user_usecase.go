package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
	"github.com/jhoicas/Calificaciones-api/pkg/password"
)

// UserUseCase reglas de negocio de administración de cuentas.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista cuentas con filtros opcionales (nombre/email contiene, rol exacto).
func (uc *UserUseCase) List(filter repository.UserFilter) ([]dto.UserResponse, error) {
	if filter.Role != "" && !entity.ValidRole(filter.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, filter.Role)
	}
	users, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// ListStoreOwners lista las cuentas con rol store_owner (selector de dueño).
func (uc *UserUseCase) ListStoreOwners() ([]dto.UserResponse, error) {
	owners, err := uc.repo.ListStoreOwners()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(owners))
	for _, u := range owners {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene una cuenta por ID. Devuelve nil, nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Create alta de cuenta por administrador: el único camino que permite crear
// cuentas con rol store_owner o admin.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	if !password.ValidatePolicy(in.Password) {
		return nil, fmt.Errorf("%w: la contraseña debe tener 8-16 caracteres, una mayúscula y un símbolo (!@#$&*)", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByEmail(in.Email)
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
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update edición por administrador. Regla de negocio: el rol store_owner no se
// asigna por edición (solo en la creación), para que toda tienda tenga un dueño
// creado deliberadamente.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Role != nil {
		if *in.Role == entity.RoleStoreOwner {
			return nil, domain.ErrOwnerRoleImmutable
		}
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *in.Role)
		}
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete baja de cuenta por administrador. Un administrador no puede eliminar
// su propia cuenta: se rechaza como error de validación y la cuenta persiste.
func (uc *UserUseCase) Delete(id, callerID string) error {
	if id == callerID {
		return domain.ErrSelfDelete
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
