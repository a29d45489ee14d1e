package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
)

func TestReserva_Confirmar(t *testing.T) {
	r := &entity.Reserva{ID: "r1", Estado: entity.EstadoPendiente, Cantidad: 2}

	require.NoError(t, r.Confirmar())
	assert.Equal(t, entity.EstadoConfirmada, r.Estado)
	assert.Equal(t, int64(2), r.Cantidad, "la transición no altera la cantidad")

	err := r.Confirmar()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	var trErr *domain.TransicionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, "CONFIRMADA", trErr.Estado)
}

func TestReserva_Cancelar(t *testing.T) {
	r := &entity.Reserva{ID: "r1", Estado: entity.EstadoPendiente}

	require.NoError(t, r.Cancelar())
	assert.Equal(t, entity.EstadoCancelada, r.Estado)

	assert.ErrorIs(t, r.Cancelar(), domain.ErrInvalidTransition)
}

func TestReserva_EstadosTerminalesSinSalida(t *testing.T) {
	confirmada := &entity.Reserva{ID: "r1", Estado: entity.EstadoConfirmada}
	assert.ErrorIs(t, confirmada.Cancelar(), domain.ErrInvalidTransition)
	assert.ErrorIs(t, confirmada.Confirmar(), domain.ErrInvalidTransition)

	cancelada := &entity.Reserva{ID: "r2", Estado: entity.EstadoCancelada}
	assert.ErrorIs(t, cancelada.Confirmar(), domain.ErrInvalidTransition)
	assert.ErrorIs(t, cancelada.Cancelar(), domain.ErrInvalidTransition)
}
