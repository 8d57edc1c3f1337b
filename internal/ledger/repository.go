package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
)

// Dataset is the orders file: orderId, customer, lines, total, status,
// date, notes.
const Dataset = "orders.txt"

const fieldCount = 7

type OrderRepositoryInterface interface {
	ListAll() ([]domain.Order, error)
	Count() (int, error)
	Append(order domain.Order) error
	SetStatus(orderID string, status domain.OrderStatus) error
}

type OrderRepository struct {
	store *textstore.Store
	lg    *logger.Logger
}

func NewOrderRepository(store *textstore.Store) OrderRepositoryInterface {
	return &OrderRepository{store: store, lg: logger.New("ledger-repository")}
}

// Count is the raw record count, malformed lines included. Order ids are
// assigned from it, so it must see the file exactly as stored.
func (r *OrderRepository) Count() (int, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return len(records), nil
}

func (r *OrderRepository) ListAll() ([]domain.Order, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders := make([]domain.Order, 0, len(records))
	for _, rec := range records {
		order, err := parseOrder(rec)
		if err != nil {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "record": rec})
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepository) Append(order domain.Order) error {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	records = append(records, encodeOrder(order))
	if err := r.store.SaveAll(Dataset, records); err != nil {
		return fmt.Errorf("failed to append order %s: %w", order.ID, err)
	}
	return nil
}

// SetStatus rewrites the dataset with one status field changed. When the
// order id is absent nothing is written, leaving the file untouched.
func (r *OrderRepository) SetStatus(orderID string, status domain.OrderStatus) error {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	for i, rec := range records {
		if len(rec) != fieldCount || rec[0] != orderID {
			continue
		}
		records[i][4] = string(status)
		if err := r.store.SaveAll(Dataset, records); err != nil {
			return fmt.Errorf("failed to update order %s: %w", orderID, err)
		}
		return nil
	}
	return domain.ErrOrderNotFound
}

func encodeOrder(o domain.Order) []string {
	return []string{
		o.ID,
		o.Customer,
		domain.EncodeLines(o.Lines),
		o.Total.StringFixed(2),
		string(o.Status),
		o.Date,
		o.Notes,
	}
}

func parseOrder(rec []string) (domain.Order, error) {
	if len(rec) != fieldCount {
		return domain.Order{}, fmt.Errorf("%w: want %d fields, got %d", domain.ErrMalformedRecord, fieldCount, len(rec))
	}
	lines, err := domain.ParseLines(rec[2])
	if err != nil {
		return domain.Order{}, err
	}
	total, err := decimal.NewFromString(rec[3])
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: bad total %q", domain.ErrMalformedRecord, rec[3])
	}
	return domain.Order{
		ID:       rec[0],
		Customer: rec[1],
		Lines:    lines,
		Total:    total,
		Status:   domain.OrderStatus(rec[4]),
		Date:     rec[5],
		Notes:    rec[6],
	}, nil
}
