package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Calificaciones-api/internal/application/dto"
	"github.com/jhoicas/Calificaciones-api/internal/application/usecase"
	"github.com/jhoicas/Calificaciones-api/internal/domain"
	"github.com/jhoicas/Calificaciones-api/internal/domain/entity"
	"github.com/jhoicas/Calificaciones-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func userFixture() (*usecase.UserUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo(
		&entity.User{ID: "admin-1", Name: "Administrador General Plataforma", Email: "admin@x.com", Role: entity.RoleAdmin},
		&entity.User{ID: "u1", Name: "Ana María Quintero López", Email: "ana@x.com", Role: entity.RoleUser},
		&entity.User{ID: "owner-1", Name: "Propietaria Tienda Centro Uno", Email: "duena@x.com", Role: entity.RoleStoreOwner},
	)
	return usecase.NewUserUseCase(repo), repo
}

// El alta por administrador sí permite roles privilegiados.
func TestUserCreate_AdminCreaCualquierRol(t *testing.T) {
	uc, _ := userFixture()

	out, err := uc.Create(dto.CreateUserRequest{
		Name:     "Nuevo Dueño De Tienda Registrado",
		Email:    "nuevo@x.com",
		Password: "Abc12345!",
		Role:     entity.RoleStoreOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, out.Role)
	assert.NotEmpty(t, out.ID)
}

func TestUserCreate_RolDesconocido(t *testing.T) {
	uc, _ := userFixture()

	_, err := uc.Create(dto.CreateUserRequest{
		Name:     "Nombre Suficientemente Largo Aquí",
		Email:    "nuevo@x.com",
		Password: "Abc12345!",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_PasswordDebil(t *testing.T) {
	uc, _ := userFixture()

	_, err := uc.Create(dto.CreateUserRequest{
		Name:     "Nombre Suficientemente Largo Aquí",
		Email:    "nuevo@x.com",
		Password: "sindigitos",
		Role:     entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, _ := userFixture()

	_, err := uc.Create(dto.CreateUserRequest{
		Name:     "Nombre Suficientemente Largo Aquí",
		Email:    "ana@x.com",
		Password: "Abc12345!",
		Role:     entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// El rol store_owner no se asigna por edición; la cuenta queda intacta.
func TestUserUpdate_RolOwnerNoAsignable(t *testing.T) {
	uc, repo := userFixture()

	_, err := uc.Update("u1", dto.UpdateUserRequest{Role: strPtr(entity.RoleStoreOwner)})
	assert.ErrorIs(t, err, domain.ErrOwnerRoleImmutable)

	u, _ := repo.GetByID("u1")
	assert.Equal(t, entity.RoleUser, u.Role, "la cuenta no debe cambiar tras el rechazo")
}

// Los campos nil no se tocan en la edición parcial.
func TestUserUpdate_Parcial(t *testing.T) {
	uc, repo := userFixture()

	out, err := uc.Update("u1", dto.UpdateUserRequest{Name: strPtr("Ana María Quintero De López")})
	require.NoError(t, err)
	assert.Equal(t, "Ana María Quintero De López", out.Name)
	assert.Equal(t, "ana@x.com", out.Email, "email no enviado permanece igual")

	u, _ := repo.GetByID("u1")
	assert.Equal(t, "Ana María Quintero De López", u.Name)
}

func TestUserUpdate_NoEncontrado(t *testing.T) {
	uc, _ := userFixture()

	_, err := uc.Update("no-existe", dto.UpdateUserRequest{Name: strPtr("Cualquier Nombre De Prueba Aquí")})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un administrador no puede eliminar su propia cuenta.
func TestUserDelete_Autoeliminacion(t *testing.T) {
	uc, repo := userFixture()

	err := uc.Delete("admin-1", "admin-1")
	assert.ErrorIs(t, err, domain.ErrSelfDelete)

	u, _ := repo.GetByID("admin-1")
	assert.NotNil(t, u, "la cuenta debe persistir tras el rechazo")
}

func TestUserDelete_OtraCuenta(t *testing.T) {
	uc, repo := userFixture()

	require.NoError(t, uc.Delete("u1", "admin-1"))
	u, _ := repo.GetByID("u1")
	assert.Nil(t, u)
}

func TestUserDelete_NoEncontrado(t *testing.T) {
	uc, _ := userFixture()
	assert.ErrorIs(t, uc.Delete("no-existe", "admin-1"), domain.ErrUserNotFound)
}

// El listado combina filtros con AND y rechaza roles desconocidos.
func TestUserList_Filtros(t *testing.T) {
	uc, _ := userFixture()

	all, err := uc.List(repository.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byRole, err := uc.List(repository.UserFilter{Role: entity.RoleUser})
	require.NoError(t, err)
	require.Len(t, byRole, 1)
	assert.Equal(t, "ana@x.com", byRole[0].Email)

	combined, err := uc.List(repository.UserFilter{Name: "ana", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, combined, "los criterios se combinan con AND")

	_, err = uc.List(repository.UserFilter{Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserListStoreOwners(t *testing.T) {
	uc, _ := userFixture()

	owners, err := uc.ListStoreOwners()
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "duena@x.com", owners[0].Email)
}
