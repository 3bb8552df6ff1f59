package usecase

import (
	"time"

	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías, scopeados al dueño.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. (title, dueño) debe ser único.
func (uc *CategoryUseCase) Create(p domain.Principal, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByTitleAndOwner(in.Title, p.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	category := &entity.Category{
		Title:     in.Title,
		UserID:    p.UserID, // el dueño sale del Principal, nunca del body
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista las categorías del dueño ordenadas por título.
func (uc *CategoryUseCase) List(p domain.Principal) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByOwner(p.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría del dueño. Una categoría de otro dueño es
// indistinguible de una inexistente.
func (uc *CategoryUseCase) GetByID(p domain.Principal, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByIDAndOwner(id, p.UserID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update actualiza el título. La unicidad excluye a la propia categoría para
// que el update idempotente no falle.
func (uc *CategoryUseCase) Update(p domain.Principal, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByIDAndOwner(id, p.UserID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetByTitleAndOwner(*in.Title, p.UserID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, domain.ErrConflict
		}
		category.Title = *in.Title
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría por id, sin filtro de dueño (solo admin).
// No cascadea a los productos que la referencian.
func (uc *CategoryUseCase) Delete(id int64) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
