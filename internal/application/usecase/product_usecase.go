package usecase

import (
	"time"

	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, scopeados al dueño.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. (name, package, dueño) debe ser único y la
// categoría referenciada debe pertenecer al mismo dueño: el caller la proveyó
// explícitamente, así que una ajena es Forbidden, no NotFound.
func (uc *ProductUseCase) Create(p domain.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if len(in.Name) < 2 || len(in.Name) > 60 || in.Category <= 0 {
		return nil, domain.ErrInvalidInput
	}
	pkg := entity.NormalizePackage(in.Package)
	if !entity.ValidPackage(pkg) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNamePackageAndOwner(in.Name, pkg, p.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	category, err := uc.categoryRepo.GetByIDAndOwner(in.Category, p.UserID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	product := &entity.Product{
		Name:       in.Name,
		Package:    pkg,
		UserID:     p.UserID,
		CategoryID: category.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos del dueño, ordenados por categoría y nombre.
func (uc *ProductUseCase) List(p domain.Principal) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByOwner(p.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, pr := range list {
		items = append(items, *toProductResponse(pr))
	}
	return items, nil
}

// GetByID obtiene un producto del dueño; uno ajeno surfacea como NotFound.
func (uc *ProductUseCase) GetByID(p domain.Principal, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndOwner(id, p.UserID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El cambio de categoría revalida que la nueva
// pertenezca al dueño. El dueño nunca se reasigna.
func (uc *ProductUseCase) Update(p domain.Principal, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndOwner(id, p.UserID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		category, err := uc.categoryRepo.GetByIDAndOwner(*in.Category, p.UserID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrForbidden
		}
		product.CategoryID = category.ID
	}
	if in.Name != nil {
		if len(*in.Name) < 2 || len(*in.Name) > 60 {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Package != nil {
		pkg := entity.NormalizePackage(*in.Package)
		if !entity.ValidPackage(pkg) {
			return nil, domain.ErrInvalidInput
		}
		product.Package = pkg
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por id, sin filtro de dueño (solo admin).
// Los precios que lo referencian caen por cascada de FK.
func (uc *ProductUseCase) Delete(id int64) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Package:    p.Package,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
