package menu

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
)

// Catalog is the read-only view the order core gets: price and name lookup
// plus the full listing, nothing that mutates.
type Catalog interface {
	LookupPrice(itemID string) (decimal.Decimal, error)
	LookupName(itemID string) (string, error)
	ListAll() ([]domain.MenuItem, error)
}

type MenuServiceInterface interface {
	Catalog
	AddItem(in domain.MenuItemInput) error
	EditItem(itemID string, upd domain.MenuItemUpdate) error
	DeleteItem(itemID string) error
}

type MenuService struct {
	repo     MenuRepositoryInterface
	validate *validator.Validate
	lg       *logger.Logger
}

func NewMenuService(repo MenuRepositoryInterface) MenuServiceInterface {
	return &MenuService{
		repo:     repo,
		validate: validator.New(),
		lg:       logger.New("menu-service"),
	}
}

func (s *MenuService) LookupPrice(itemID string) (decimal.Decimal, error) {
	items, err := s.repo.ListAll()
	if err != nil {
		return decimal.Zero, err
	}
	for _, it := range items {
		if it.ID == itemID {
			return it.Price, nil
		}
	}
	return decimal.Zero, domain.ErrItemNotFound
}

func (s *MenuService) LookupName(itemID string) (string, error) {
	items, err := s.repo.ListAll()
	if err != nil {
		return "", err
	}
	for _, it := range items {
		if it.ID == itemID {
			return it.Name, nil
		}
	}
	return "", domain.ErrItemNotFound
}

func (s *MenuService) ListAll() ([]domain.MenuItem, error) {
	return s.repo.ListAll()
}

func (s *MenuService) AddItem(in domain.MenuItemInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.IsNegative() {
		return fmt.Errorf("%w: price %q", domain.ErrValidation, in.Price)
	}
	items, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == in.ID {
			return domain.ErrDuplicateKey
		}
	}
	items = append(items, domain.MenuItem{ID: in.ID, Name: in.Name, Price: price})
	if err := s.repo.SaveAll(items); err != nil {
		return err
	}
	s.lg.Info("menu_item_added", map[string]any{"item_id": in.ID, "name": in.Name})
	return nil
}

// EditItem updates name and price; empty fields keep current values.
func (s *MenuService) EditItem(itemID string, upd domain.MenuItemUpdate) error {
	if err := s.validate.Struct(upd); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	items, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID != itemID {
			continue
		}
		if upd.NewName != "" {
			items[i].Name = upd.NewName
		}
		if upd.NewPrice != "" {
			price, err := decimal.NewFromString(upd.NewPrice)
			if err != nil || price.IsNegative() {
				return fmt.Errorf("%w: price %q", domain.ErrValidation, upd.NewPrice)
			}
			items[i].Price = price
		}
		if err := s.repo.SaveAll(items); err != nil {
			return err
		}
		s.lg.Info("menu_item_updated", map[string]any{"item_id": itemID})
		return nil
	}
	return domain.ErrItemNotFound
}

func (s *MenuService) DeleteItem(itemID string) error {
	items, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return domain.ErrItemNotFound
	}
	if err := s.repo.SaveAll(kept); err != nil {
		return err
	}
	s.lg.Info("menu_item_deleted", map[string]any{"item_id": itemID})
	return nil
}
