package usecase_test

import (
	"sort"
	"time"

	"github.com/WallaceSt/bzutils/internal/domain/entity"
	"github.com/WallaceSt/bzutils/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican el scoping por
// dueño de los adaptadores reales: un lookup con dueño distinto devuelve nil.

// ── usuarios ──────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	rows   map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: map[int64]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range f.rows {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range f.rows {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range f.rows {
		cp := *u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.rows, id)
	return nil
}

// ── categorías ────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	rows   map[int64]*entity.Category
	nextID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[int64]*entity.Category{}, nextID: 1}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	c.ID = f.nextID
	f.nextID++
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Category, error) {
	c, ok := f.rows[id]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetByTitleAndOwner(title string, ownerID int64) (*entity.Category, error) {
	for _, c := range f.rows {
		if c.Title == title && c.UserID == ownerID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) ListByOwner(ownerID int64) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range f.rows {
		if c.UserID == ownerID {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Title < list[j].Title })
	return list, nil
}

func (f *fakeCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// ── productos ─────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	rows   map[int64]*entity.Product
	nextID int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: map[int64]*entity.Product{}, nextID: 1}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Product, error) {
	p, ok := f.rows[id]
	if !ok || p.UserID != ownerID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByNamePackageAndOwner(name, pkg string, ownerID int64) (*entity.Product, error) {
	for _, p := range f.rows {
		if p.Name == name && p.Package == pkg && p.UserID == ownerID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) ListByOwner(ownerID int64) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.rows {
		if p.UserID == ownerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeProductRepo) Delete(id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// ── períodos ──────────────────────────────────────────────────────────────────

type fakePeriodRepo struct {
	rows      map[int64]*entity.Period
	nextID    int64
	priceList map[int64][]entity.PriceListItem
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{
		rows:      map[int64]*entity.Period{},
		nextID:    1,
		priceList: map[int64][]entity.PriceListItem{},
	}
}

func (f *fakePeriodRepo) Create(p *entity.Period) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePeriodRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Period, error) {
	p, ok := f.rows[id]
	if !ok || p.UserID != ownerID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePeriodRepo) GetPriceList(periodID int64) ([]entity.PriceListItem, error) {
	return f.priceList[periodID], nil
}

func (f *fakePeriodRepo) ExistsOverlapping(ownerID int64, from, to time.Time, excludeID int64) (bool, error) {
	for _, p := range f.rows {
		if p.UserID != ownerID || p.ID == excludeID {
			continue
		}
		if p.Overlaps(from, to) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePeriodRepo) Update(p *entity.Period) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePeriodRepo) ListByOwner(ownerID int64) ([]*entity.Period, error) {
	var list []*entity.Period
	for _, p := range f.rows {
		if p.UserID == ownerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ValidFrom.Before(list[j].ValidFrom) })
	return list, nil
}

func (f *fakePeriodRepo) Delete(id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// fakeTxRunner ejecuta el callback directo sobre el fake, sin transacción.
type fakeTxRunner struct {
	repo *fakePeriodRepo
}

func (f *fakeTxRunner) RunSerialized(_ int64, fn func(repo repository.PeriodRepository) error) error {
	return fn(f.repo)
}

// ── precios ───────────────────────────────────────────────────────────────────

type fakePriceRepo struct {
	rows     map[int64]*entity.Price
	nextID   int64
	products *fakeProductRepo
	periods  *fakePeriodRepo
}

func newFakePriceRepo(products *fakeProductRepo, periods *fakePeriodRepo) *fakePriceRepo {
	return &fakePriceRepo{
		rows:     map[int64]*entity.Price{},
		nextID:   1,
		products: products,
		periods:  periods,
	}
}

func (f *fakePriceRepo) Create(p *entity.Price) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePriceRepo) GetByProductAndPeriod(productID, periodID int64) (*entity.Price, error) {
	for _, p := range f.rows {
		if p.ProductID == productID && p.PeriodID == periodID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePriceRepo) GetByIDAndOwner(id, ownerID int64) (*entity.Price, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	product := f.products.rows[p.ProductID]
	if product == nil || product.UserID != ownerID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePriceRepo) GetViewByIDAndOwner(id, ownerID int64) (*entity.PriceView, error) {
	p, err := f.GetByIDAndOwner(id, ownerID)
	if err != nil || p == nil {
		return nil, err
	}
	return f.toView(p), nil
}

func (f *fakePriceRepo) ListByOwner(ownerID int64) ([]*entity.PriceView, error) {
	var list []*entity.PriceView
	for _, p := range f.rows {
		product := f.products.rows[p.ProductID]
		if product == nil || product.UserID != ownerID {
			continue
		}
		list = append(list, f.toView(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (f *fakePriceRepo) UpdateCurrency(p *entity.Price) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakePriceRepo) Delete(id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakePriceRepo) toView(p *entity.Price) *entity.PriceView {
	v := &entity.PriceView{ID: p.ID, Currency: p.Currency}
	if product := f.products.rows[p.ProductID]; product != nil {
		v.ProductName = product.Name
	}
	if period := f.periods.rows[p.PeriodID]; period != nil {
		v.ValidFrom = period.ValidFrom
		v.ValidTo = period.ValidTo
	}
	return v
}
