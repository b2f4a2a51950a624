package usecase

import (
	"context"
	"fmt"

	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/entity"
	"github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) List(ctx context.Context) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Success: true, Proveedores: out}, nil
}

func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierItemResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: Proveedor no encontrado", domain.ErrNotFound)
	}
	return &dto.SupplierItemResponse{Success: true, Proveedor: toSupplierResponse(s)}, nil
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.MessageResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	s := &entity.Supplier{Name: in.Nombre, Address: in.Direccion, Phone: in.Telefono}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return created("Proveedor creado exitosamente", s.ID), nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (*dto.MessageResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if err := uc.repo.Update(ctx, &entity.Supplier{ID: id, Name: in.Nombre, Address: in.Direccion, Phone: in.Telefono}); err != nil {
		return nil, err
	}
	return ok("Proveedor actualizado exitosamente"), nil
}

func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return ok("Proveedor eliminado exitosamente"), nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{IDProveedor: s.ID, Nombre: s.Name, Direccion: s.Address, Telefono: s.Phone}
}
