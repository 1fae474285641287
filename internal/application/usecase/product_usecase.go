package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La colección de lotes no
// se edita por aquí: muta solo vía remisiones y traslados.
type ProductUseCase struct {
	repo       repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, warehouses repository.WarehouseRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, warehouses: warehouses}
}

// Create crea un producto activo sin lotes.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if !entity.IsValidTaxRate(in.TaxRate) {
		vErr := domain.NewValidationError()
		vErr.Add("tax_rate", "tarifa no admitida; use 0, 0.05 o 0.19")
		return nil, vErr
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		TaxRate:     in.TaxRate,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID, con sus lotes.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product), nil
}

// Update actualiza los campos de catálogo de un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.TaxRate != nil {
		if !entity.IsValidTaxRate(*in.TaxRate) {
			vErr := domain.NewValidationError()
			vErr.Add("tax_rate", "tarifa no admitida; use 0, 0.05 o 0.19")
			return nil, vErr
		}
		product.TaxRate = *in.TaxRate
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	lots := make([]dto.LotResponse, 0, len(p.Lots))
	for _, lot := range p.Lots {
		lr := dto.LotResponse{
			ID:          lot.ID,
			LotNumber:   lot.LotNumber,
			Available:   lot.Available,
			ExpiryDate:  lot.ExpiryDate,
			WarehouseID: lot.WarehouseID,
		}
		if w, err := uc.warehouses.GetByID(lot.WarehouseID); err == nil && w != nil {
			lr.WarehouseName = w.Name
		}
		lots = append(lots, lr)
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		Active:      p.Active,
		StockTotal:  p.StockTotal(""),
		Lots:        lots,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
