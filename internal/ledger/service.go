package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/menu"
)

type OrderServiceInterface interface {
	PlaceOrder(customer string, lines []domain.OrderLineInput) (domain.Order, error)
	ListOrdersForCustomer(username string) ([]domain.Order, error)
	ListActiveOrders() ([]domain.Order, error)
	UpdateStatus(orderID string, status domain.OrderStatus) error
}

type OrderService struct {
	repo    OrderRepositoryInterface
	catalog menu.Catalog
	lg      *logger.Logger
}

func NewOrderService(repo OrderRepositoryInterface, catalog menu.Catalog) OrderServiceInterface {
	return &OrderService{repo: repo, catalog: catalog, lg: logger.New("ledger-service")}
}

// PlaceOrder validates every requested line against the catalog, freezes
// the current prices into the total and persists the order with a count+1
// id. The id scheme is not collision-safe under concurrent writers; the
// whole store assumes a single interactive process.
func (s *OrderService) PlaceOrder(customer string, requested []domain.OrderLineInput) (domain.Order, error) {
	if len(requested) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}

	lines := make([]domain.OrderLine, 0, len(requested))
	total := decimal.Zero
	for _, in := range requested {
		if in.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: item %s", domain.ErrInvalidQuantity, in.ItemID)
		}
		price, err := s.catalog.LookupPrice(in.ItemID)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, in.ItemID)
			}
			return domain.Order{}, fmt.Errorf("failed to look up item %s: %w", in.ItemID, err)
		}
		lines = append(lines, domain.OrderLine{ItemID: in.ItemID, Quantity: in.Quantity, UnitPrice: price})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(in.Quantity))))
	}

	count, err := s.repo.Count()
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		ID:       strconv.Itoa(count + 1),
		Customer: customer,
		Lines:    lines,
		Total:    total,
		Status:   domain.StatusPending,
		Date:     time.Now().Format("2006-01-02"),
	}
	if err := s.repo.Append(order); err != nil {
		return domain.Order{}, fmt.Errorf("failed to save order: %w", err)
	}
	s.lg.Info("order_placed", map[string]any{
		"order_id": order.ID,
		"customer": customer,
		"total":    order.Total.StringFixed(2),
	})
	return order, nil
}

// ListOrdersForCustomer returns the customer's orders in storage order,
// which is chronological by insertion.
func (s *OrderService) ListOrdersForCustomer(username string) ([]domain.Order, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	var mine []domain.Order
	for _, o := range all {
		if o.Customer == username {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

func (s *OrderService) ListActiveOrders() ([]domain.Order, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	var active []domain.Order
	for _, o := range all {
		if o.Status.Active() {
			active = append(active, o)
		}
	}
	return active, nil
}

// UpdateStatus assigns any of the three recognized statuses. Membership is
// the only check: the lifecycle deliberately permits any jump, including
// Completed back to Pending.
func (s *OrderService) UpdateStatus(orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	if err := s.repo.SetStatus(orderID, status); err != nil {
		return err
	}
	s.lg.Info("order_status_updated", map[string]any{"order_id": orderID, "status": string(status)})
	return nil
}
