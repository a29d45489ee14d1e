package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Son las categorías que los
// handlers mapean a códigos HTTP; los tipos de abajo agregan detalle sin que
// el caller tenga que comparar strings.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidTransition  = errors.New("transición de estado inválida")
	ErrValidation         = errors.New("datos inválidos")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
)

// NotFoundError indica qué entidad no se pudo resolver (cliente, producto, reserva...).
type NotFoundError struct {
	Entidad string
	ID      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s no encontrado", e.Entidad, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// StockError indica que el stock disponible no cubre la cantidad solicitada.
// Disponible es 0 cuando el stock del producto es nulo (desconocido).
type StockError struct {
	ProductoID string
	Disponible int64
	Solicitado int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: disponible %d, solicitado %d",
		e.ProductoID, e.Disponible, e.Solicitado)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// TransicionError indica un intento de transición fuera del ciclo de vida
// PENDIENTE -> CONFIRMADA | CANCELADA.
type TransicionError struct {
	ReservaID string
	Estado    string
	Operacion string
}

func (e *TransicionError) Error() string {
	return fmt.Sprintf("no se puede %s la reserva %s en estado %s: solo reservas PENDIENTE",
		e.Operacion, e.ReservaID, e.Estado)
}

func (e *TransicionError) Unwrap() error { return ErrInvalidTransition }

// ValidacionError indica datos malformados que llegaron hasta el motor de
// reservas; se reporta como defecto (500) y no debe tumbar el proceso.
type ValidacionError struct {
	Campo  string
	Motivo string
}

func (e *ValidacionError) Error() string {
	return fmt.Sprintf("validación de %s: %s", e.Campo, e.Motivo)
}

func (e *ValidacionError) Unwrap() error { return ErrValidation }
