package usecase

import (
	"time"

	"github.com/WallaceSt/bzutils/internal/application/dto"
	"github.com/WallaceSt/bzutils/internal/domain"
	"github.com/WallaceSt/bzutils/internal/domain/entity"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

// PeriodUseCase casos de uso CRUD para períodos de vigencia más el detector
// de solapamiento de intervalos. Chequeo y escritura corren serializados por
// dueño dentro del TxRunner, así dos requests concurrentes del mismo dueño no
// pueden pasar ambos el chequeo y violar el invariante de no-solape.
type PeriodUseCase struct {
	repo repository.PeriodRepository
	tx   repository.PeriodTxRunner
}

// NewPeriodUseCase construye el caso de uso.
func NewPeriodUseCase(repo repository.PeriodRepository, tx repository.PeriodTxRunner) *PeriodUseCase {
	return &PeriodUseCase{repo: repo, tx: tx}
}

// Create crea un período. Intervalo malformado (from > to) es Conflict y se
// detecta antes del test de solape; el solape es de intervalo cerrado (los
// extremos que se tocan cuentan).
func (uc *PeriodUseCase) Create(p domain.Principal, in dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	from, err := parseDate(in.ValidFrom)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := parseDate(in.ValidTo)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if from.After(to) {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	period := &entity.Period{
		ValidFrom: from,
		ValidTo:   to,
		UserID:    p.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.tx.RunSerialized(p.UserID, func(repo repository.PeriodRepository) error {
		overlaps, err := repo.ExistsOverlapping(p.UserID, from, to, 0)
		if err != nil {
			return err
		}
		if overlaps {
			return domain.ErrConflict
		}
		return repo.Create(period)
	})
	if err != nil {
		return nil, err
	}
	return toPeriodResponse(period), nil
}

// List lista los períodos del dueño ordenados por validFrom.
func (uc *PeriodUseCase) List(p domain.Principal) ([]dto.PeriodResponse, error) {
	list, err := uc.repo.ListByOwner(p.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PeriodResponse, 0, len(list))
	for _, pe := range list {
		items = append(items, *toPeriodResponse(pe))
	}
	return items, nil
}

// GetDetail devuelve el período del dueño con su lista de precios
// (producto + monto), ordenada por nombre de producto.
func (uc *PeriodUseCase) GetDetail(p domain.Principal, id int64) (*dto.PeriodDetailResponse, error) {
	period, err := uc.repo.GetByIDAndOwner(id, p.UserID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.GetPriceList(period.ID)
	if err != nil {
		return nil, err
	}
	products := make([]dto.PeriodProductResponse, 0, len(items))
	for _, it := range items {
		products = append(products, dto.PeriodProductResponse{
			Name:     it.ProductName,
			Package:  it.Package,
			Currency: it.Currency,
		})
	}
	return &dto.PeriodDetailResponse{
		ValidFrom: period.ValidFrom.Format(dto.DateLayout),
		ValidTo:   period.ValidTo.Format(dto.DateLayout),
		Products:  products,
	}, nil
}

// Update actualiza un período. La fecha omitida conserva el valor actual y el
// intervalo resultante se valida completo, excluyendo al propio período del
// test de solape (un update con el intervalo sin cambios nunca conflictúa
// consigo mismo).
func (uc *PeriodUseCase) Update(p domain.Principal, id int64, in dto.UpdatePeriodRequest) (*dto.PeriodResponse, error) {
	var result *entity.Period
	err := uc.tx.RunSerialized(p.UserID, func(repo repository.PeriodRepository) error {
		period, err := repo.GetByIDAndOwner(id, p.UserID)
		if err != nil {
			return err
		}
		if period == nil {
			return domain.ErrNotFound
		}
		from := period.ValidFrom
		to := period.ValidTo
		if in.ValidFrom != nil {
			if from, err = parseDate(*in.ValidFrom); err != nil {
				return domain.ErrInvalidInput
			}
		}
		if in.ValidTo != nil {
			if to, err = parseDate(*in.ValidTo); err != nil {
				return domain.ErrInvalidInput
			}
		}
		if from.After(to) {
			return domain.ErrConflict
		}
		overlaps, err := repo.ExistsOverlapping(p.UserID, from, to, period.ID)
		if err != nil {
			return err
		}
		if overlaps {
			return domain.ErrConflict
		}
		period.ValidFrom = from
		period.ValidTo = to
		period.UpdatedAt = time.Now()
		if err := repo.Update(period); err != nil {
			return err
		}
		result = period
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPeriodResponse(result), nil
}

// Delete elimina un período por id, sin filtro de dueño (solo admin).
// Los precios que lo referencian caen por cascada de FK.
func (uc *PeriodUseCase) Delete(id int64) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateLayout, s)
}

func toPeriodResponse(p *entity.Period) *dto.PeriodResponse {
	if p == nil {
		return nil
	}
	return &dto.PeriodResponse{
		ID:        p.ID,
		ValidFrom: p.ValidFrom.Format(dto.DateLayout),
		ValidTo:   p.ValidTo.Format(dto.DateLayout),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
