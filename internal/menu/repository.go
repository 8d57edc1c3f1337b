package menu

import (
	"fmt"

	"github.com/shopspring/decimal"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
)

// Dataset is the menu file: itemId, name, unitPrice.
const Dataset = "menu.txt"

const fieldCount = 3

type MenuRepositoryInterface interface {
	ListAll() ([]domain.MenuItem, error)
	SaveAll(items []domain.MenuItem) error
}

type MenuRepository struct {
	store *textstore.Store
	lg    *logger.Logger
}

func NewMenuRepository(store *textstore.Store) MenuRepositoryInterface {
	return &MenuRepository{store: store, lg: logger.New("menu-repository")}
}

func (r *MenuRepository) ListAll() ([]domain.MenuItem, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	items := make([]domain.MenuItem, 0, len(records))
	for _, rec := range records {
		if len(rec) != fieldCount {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "fields": len(rec)})
			continue
		}
		price, err := decimal.NewFromString(rec[2])
		if err != nil {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "item_id": rec[0], "price": rec[2]})
			continue
		}
		items = append(items, domain.MenuItem{ID: rec[0], Name: rec[1], Price: price})
	}
	return items, nil
}

func (r *MenuRepository) SaveAll(items []domain.MenuItem) error {
	records := make([][]string, 0, len(items))
	for _, it := range items {
		records = append(records, []string{it.ID, it.Name, it.Price.String()})
	}
	if err := r.store.SaveAll(Dataset, records); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	return nil
}
