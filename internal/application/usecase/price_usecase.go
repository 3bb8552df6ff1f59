package usecase

import (
	"time"

	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PriceUseCase casos de uso para precios. Un precio referencia un par
// (producto, período) y vale solo si ambos pertenecen al principal que lo
// crea; esas referencias vienen del caller, así que una ajena es Forbidden.
type PriceUseCase struct {
	repo        repository.PriceRepository
	productRepo repository.ProductRepository
	periodRepo  repository.PeriodRepository
}

// NewPriceUseCase construye el caso de uso.
func NewPriceUseCase(repo repository.PriceRepository, productRepo repository.ProductRepository, periodRepo repository.PeriodRepository) *PriceUseCase {
	return &PriceUseCase{repo: repo, productRepo: productRepo, periodRepo: periodRepo}
}

// validCurrency exige monto positivo con a lo sumo 2 decimales.
func validCurrency(d decimal.Decimal) bool {
	return d.IsPositive() && d.Exponent() >= -2
}

// Create crea un precio: producto del dueño, período del dueño y par
// (producto, período) sin precio previo, en ese orden; cada chequeo que falla
// corta la operación.
func (uc *PriceUseCase) Create(p domain.Principal, in dto.CreatePriceRequest) (*dto.PriceResponse, error) {
	if !validCurrency(in.Currency) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByIDAndOwner(in.Product, p.UserID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrForbidden
	}
	period, err := uc.periodRepo.GetByIDAndOwner(in.Period, p.UserID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByProductAndPeriod(product.ID, period.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	price := &entity.Price{
		Currency:  in.Currency,
		ProductID: product.ID,
		PeriodID:  period.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// List lista los precios del dueño (vía el dueño del producto).
func (uc *PriceUseCase) List(p domain.Principal) ([]dto.PriceViewResponse, error) {
	list, err := uc.repo.ListByOwner(p.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceViewResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toPriceViewResponse(v))
	}
	return items, nil
}

// GetByID obtiene la vista de un precio del dueño; uno ajeno es NotFound.
func (uc *PriceUseCase) GetByID(p domain.Principal, id int64) (*dto.PriceViewResponse, error) {
	view, err := uc.repo.GetViewByIDAndOwner(id, p.UserID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	return toPriceViewResponse(view), nil
}

// Update cambia solo el monto; producto y período son inmutables.
func (uc *PriceUseCase) Update(p domain.Principal, id int64, in dto.UpdatePriceRequest) (*dto.PriceResponse, error) {
	price, err := uc.repo.GetByIDAndOwner(id, p.UserID)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}
	if in.Currency != nil {
		if !validCurrency(*in.Currency) {
			return nil, domain.ErrInvalidInput
		}
		price.Currency = *in.Currency
	}
	price.UpdatedAt = time.Now()
	if err := uc.repo.UpdateCurrency(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// Delete elimina un precio por id, sin filtro de dueño (solo admin).
func (uc *PriceUseCase) Delete(id int64) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toPriceResponse(pr *entity.Price) *dto.PriceResponse {
	if pr == nil {
		return nil
	}
	return &dto.PriceResponse{
		ID:        pr.ID,
		Currency:  pr.Currency,
		ProductID: pr.ProductID,
		PeriodID:  pr.PeriodID,
		CreatedAt: pr.CreatedAt,
		UpdatedAt: pr.UpdatedAt,
	}
}

func toPriceViewResponse(v *entity.PriceView) *dto.PriceViewResponse {
	if v == nil {
		return nil
	}
	return &dto.PriceViewResponse{
		ID:          v.ID,
		Currency:    v.Currency,
		ProductName: v.ProductName,
		ValidFrom:   v.ValidFrom.Format(dto.DateLayout),
		ValidTo:     v.ValidTo.Format(dto.DateLayout),
	}
}
