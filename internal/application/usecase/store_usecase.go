package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

// StoreUseCase reglas de negocio de tiendas.
type StoreUseCase struct {
	stores repository.StoreRepository
	users  repository.UserRepository
}

// NewStoreUseCase construye el caso de uso de tiendas.
func NewStoreUseCase(stores repository.StoreRepository, users repository.UserRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, users: users}
}

// List lista tiendas con promedio de calificación y, si se suministra
// requestingUserID, la calificación propia de ese usuario por tienda.
func (uc *StoreUseCase) List(ctx context.Context, filter repository.StoreFilter, requestingUserID string) ([]dto.StoreResponse, error) {
	rows, err := uc.stores.List(ctx, filter, requestingUserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.StoreResponse{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Address:       row.Address,
			OwnerID:       row.OwnerID,
			OwnerName:     row.OwnerName,
			AverageRating: row.AverageRating,
			UserRating:    row.UserRating,
		})
	}
	return out, nil
}

// Create alta de tienda por administrador. Si viene dueño, debe existir y
// tener rol store_owner; un dueño no puede repetir email de tienda.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreDetailResponse, error) {
	if in.OwnerID != nil {
		if err := uc.validateOwner(*in.OwnerID); err != nil {
			return nil, err
		}
		existing, err := uc.stores.GetByEmailAndOwner(in.Email, *in.OwnerID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		OwnerID:   in.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.stores.Create(store); err != nil {
		return nil, err
	}
	return toStoreDetail(store), nil
}

// Update edición de tienda por administrador. Campos nil no se tocan; un
// cambio de dueño revalida el rol del nuevo dueño.
func (uc *StoreUseCase) Update(id string, in dto.UpdateStoreRequest) (*dto.StoreDetailResponse, error) {
	store, err := uc.stores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	if in.OwnerID != nil {
		if err := uc.validateOwner(*in.OwnerID); err != nil {
			return nil, err
		}
		store.OwnerID = in.OwnerID
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Email != nil {
		store.Email = *in.Email
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	store.UpdatedAt = time.Now()
	if err := uc.stores.Update(store); err != nil {
		return nil, err
	}
	return toStoreDetail(store), nil
}

// Delete baja de tienda. Sus calificaciones caen en cascada en el esquema.
func (uc *StoreUseCase) Delete(id string) error {
	store, err := uc.stores.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return uc.stores.Delete(id)
}

// validateOwner exige que el dueño exista y tenga rol store_owner.
func (uc *StoreUseCase) validateOwner(ownerID string) error {
	owner, err := uc.users.GetByID(ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return domain.ErrUserNotFound
	}
	if owner.Role != entity.RoleStoreOwner {
		return domain.ErrOwnerRoleRequired
	}
	return nil
}

func toStoreDetail(s *entity.Store) *dto.StoreDetailResponse {
	return &dto.StoreDetailResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
