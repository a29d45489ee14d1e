package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/reservas-api/internal/application/dto"
	"github.com/jhoicas/reservas-api/internal/domain"
	"github.com/jhoicas/reservas-api/internal/domain/entity"
	"github.com/jhoicas/reservas-api/internal/domain/repository"
)

// SucursalUseCase casos de uso CRUD para sucursales.
type SucursalUseCase struct {
	repo repository.SucursalRepository
}

// NewSucursalUseCase construye el caso de uso.
func NewSucursalUseCase(repo repository.SucursalRepository) *SucursalUseCase {
	return &SucursalUseCase{repo: repo}
}

// Create crea una sucursal.
func (uc *SucursalUseCase) Create(in dto.CreateSucursalRequest) (*dto.SucursalResponse, error) {
	if in.Nombre == "" {
		return nil, &domain.ValidacionError{Campo: "sucursal", Motivo: "nombre es obligatorio"}
	}
	now := time.Now()
	sucursal := &entity.Sucursal{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Ciudad:    in.Ciudad,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sucursal); err != nil {
		return nil, err
	}
	return toSucursalResponse(sucursal), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *SucursalUseCase) GetByID(id string) (*dto.SucursalResponse, error) {
	sucursal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, &domain.NotFoundError{Entidad: "sucursal", ID: id}
	}
	return toSucursalResponse(sucursal), nil
}

// Update actualiza los datos de una sucursal.
func (uc *SucursalUseCase) Update(id string, in dto.UpdateSucursalRequest) (*dto.SucursalResponse, error) {
	sucursal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, &domain.NotFoundError{Entidad: "sucursal", ID: id}
	}
	if in.Nombre != nil {
		sucursal.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		sucursal.Direccion = *in.Direccion
	}
	if in.Ciudad != nil {
		sucursal.Ciudad = *in.Ciudad
	}
	sucursal.UpdatedAt = time.Now()
	if err := uc.repo.Update(sucursal); err != nil {
		return nil, err
	}
	return toSucursalResponse(sucursal), nil
}

// Delete elimina una sucursal.
func (uc *SucursalUseCase) Delete(id string) error {
	sucursal, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sucursal == nil {
		return &domain.NotFoundError{Entidad: "sucursal", ID: id}
	}
	return uc.repo.Delete(id)
}

// List lista sucursales con paginación.
func (uc *SucursalUseCase) List(limit, offset int) ([]dto.SucursalResponse, error) {
	lista, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SucursalResponse, 0, len(lista))
	for _, s := range lista {
		out = append(out, *toSucursalResponse(s))
	}
	return out, nil
}

func toSucursalResponse(s *entity.Sucursal) *dto.SucursalResponse {
	return &dto.SucursalResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		Direccion: s.Direccion,
		Ciudad:    s.Ciudad,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
