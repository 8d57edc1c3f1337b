package sales

import (
	"errors"

	"github.com/shopspring/decimal"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/ledger"
	"restaurant-ops/internal/menu"
)

// Report is the display-ready form of a SalesSummary: item names resolved,
// items sorted by descending quantity, dates ascending.
type Report struct {
	Summary domain.SalesSummary
	Items   []domain.ItemSales
	Dates   []string
}

type SalesServiceInterface interface {
	ComputeSummary() (Report, error)
}

type SalesService struct {
	orders  ledger.OrderRepositoryInterface
	catalog menu.Catalog
	lg      *logger.Logger
}

func NewSalesService(orders ledger.OrderRepositoryInterface, catalog menu.Catalog) SalesServiceInterface {
	return &SalesService{orders: orders, catalog: catalog, lg: logger.New("sales-service")}
}

// ComputeSummary rescans the full order set and aggregates every Completed
// order: revenue, per-item quantities and per-date revenue. Orders are
// never mutated here; the summary has no lifecycle of its own.
func (s *SalesService) ComputeSummary() (Report, error) {
	all, err := s.orders.ListAll()
	if err != nil {
		return Report{}, err
	}

	summary := domain.SalesSummary{
		TotalRevenue:   decimal.Zero,
		ItemQuantities: map[string]int{},
		RevenueByDate:  map[string]decimal.Decimal{},
	}
	var firstSeen []string
	for _, o := range all {
		if o.Status != domain.StatusCompleted {
			continue
		}
		summary.CompletedOrders++
		summary.TotalRevenue = summary.TotalRevenue.Add(o.Total)
		for _, line := range o.Lines {
			if _, seen := summary.ItemQuantities[line.ItemID]; !seen {
				firstSeen = append(firstSeen, line.ItemID)
			}
			summary.ItemQuantities[line.ItemID] += line.Quantity
		}
		day, ok := summary.RevenueByDate[o.Date]
		if !ok {
			day = decimal.Zero
		}
		summary.RevenueByDate[o.Date] = day.Add(o.Total)
	}

	items := summary.TopItems(firstSeen)
	for i := range items {
		items[i].Name = s.resolveName(items[i].ItemID)
	}

	s.lg.Debug("sales_summary_computed", map[string]any{
		"completed_orders": summary.CompletedOrders,
		"total_revenue":    summary.TotalRevenue.StringFixed(2),
	})
	return Report{Summary: summary, Items: items, Dates: summary.Dates()}, nil
}

// resolveName tolerates catalog/order divergence: an item sold and later
// removed from the menu still reports, under a placeholder label.
func (s *SalesService) resolveName(itemID string) string {
	name, err := s.catalog.LookupName(itemID)
	if err != nil {
		if !errors.Is(err, domain.ErrItemNotFound) {
			s.lg.Warn("item_name_lookup_failed", map[string]any{"item_id": itemID})
		}
		return "Unknown Item"
	}
	return name
}
