package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrStoreNotFound      = errors.New("tienda no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrRatingOutOfRange   = errors.New("la calificación debe estar entre 1 y 5")
	ErrOwnerRoleRequired  = errors.New("el usuario seleccionado no tiene rol store_owner")
	ErrOwnerRoleImmutable = errors.New("no se puede asignar el rol store_owner por edición")
	ErrSelfDelete         = errors.New("un administrador no puede eliminar su propia cuenta")
	ErrWrongPassword      = errors.New("la contraseña actual es incorrecta")
)
