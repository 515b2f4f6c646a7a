package domain

import (
	"errors"
	"fmt"
)

// Errores centinela de dominio (sin dependencias externas).
// Los handlers HTTP los comparan con errors.Is para mapear códigos de estado.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInactive          = errors.New("recurso inactivo")
)

// ValidationError describe un campo inválido. Se corresponde con ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidation construye un ValidationError con campo y mensaje.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indica que una entidad referenciada no existe. Se corresponde con ErrNotFound.
type NotFoundError struct {
	Entity string
	Ref    string
}

func (e *NotFoundError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("%s no encontrado", e.Entity)
	}
	return fmt.Sprintf("%s '%s' no encontrado", e.Entity, e.Ref)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(entity, ref string) error {
	return &NotFoundError{Entity: entity, Ref: ref}
}

// ConflictError indica un duplicado de llave única o un conflicto referencial.
// Se corresponde con ErrConflict (y con ErrDuplicate cuando es por unicidad).
type ConflictError struct {
	Message   string
	Duplicate bool
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Is(target error) bool {
	if target == ErrConflict {
		return true
	}
	return e.Duplicate && target == ErrDuplicate
}

// NewDuplicate construye un ConflictError por llave única duplicada.
func NewDuplicate(message string) error {
	return &ConflictError{Message: message, Duplicate: true}
}

// NewConflict construye un ConflictError referencial o de estado.
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}

// InsufficientStockError lleva el stock disponible para construir el mensaje al usuario.
// Se corresponde con ErrInsufficientStock.
type InsufficientStockError struct {
	Product   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para '%s'. Disponible: %d", e.Product, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// InactiveEntityError indica que la operación referencia un recurso deshabilitado.
// Se corresponde con ErrInactive.
type InactiveEntityError struct {
	Entity string
	Name   string
}

func (e *InactiveEntityError) Error() string {
	return fmt.Sprintf("%s '%s' está inactivo", e.Entity, e.Name)
}

func (e *InactiveEntityError) Is(target error) bool { return target == ErrInactive }
