package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/ledger"
	"restaurant-ops/internal/menu"
)

type fixture struct {
	orders  ledger.OrderServiceInterface
	sales   SalesServiceInterface
	menuSvc menu.MenuServiceInterface
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := textstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("textstore.New: %v", err)
	}
	menuRepo := menu.NewMenuRepository(store)
	if err := menuRepo.SaveAll([]domain.MenuItem{
		{ID: "1", Name: "Burger", Price: decimal.RequireFromString("10.00")},
		{ID: "2", Name: "Fries", Price: decimal.RequireFromString("5.00")},
	}); err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	menuSvc := menu.NewMenuService(menuRepo)
	orderRepo := ledger.NewOrderRepository(store)
	return fixture{
		orders:  ledger.NewOrderService(orderRepo, menuSvc),
		sales:   NewSalesService(orderRepo, menuSvc),
		menuSvc: menuSvc,
	}
}

func TestComputeSummary_NoCompletedOrders(t *testing.T) {
	f := newFixture(t)
	// A pending order must not count.
	if _, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	report, err := f.sales.ComputeSummary()
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	if report.Summary.CompletedOrders != 0 {
		t.Errorf("expected 0 completed orders, got %d", report.Summary.CompletedOrders)
	}
	if got := report.Summary.TotalRevenue.StringFixed(2); got != "0.00" {
		t.Errorf("expected revenue 0.00, got %s", got)
	}
	if len(report.Summary.ItemQuantities) != 0 {
		t.Errorf("expected empty item quantities, got %v", report.Summary.ItemQuantities)
	}
}

func TestComputeSummary_Scenario(t *testing.T) {
	f := newFixture(t)
	// First order: 2 burgers + 1 fries = 25.00, completed.
	first, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{
		{ItemID: "1", Quantity: 2},
		{ItemID: "2", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if first.ID != "1" || first.Total.StringFixed(2) != "25.00" || first.Status != domain.StatusPending {
		t.Fatalf("unexpected first order: %+v", first)
	}
	if err := f.orders.UpdateStatus("1", domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	// Second order by another customer: 1 burger = 10.00, completed.
	if _, err := f.orders.PlaceOrder("bob", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if err := f.orders.UpdateStatus("2", domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	report, err := f.sales.ComputeSummary()
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	if report.Summary.CompletedOrders != 2 {
		t.Errorf("expected 2 completed orders, got %d", report.Summary.CompletedOrders)
	}
	if got := report.Summary.TotalRevenue.StringFixed(2); got != "35.00" {
		t.Errorf("expected revenue 35.00, got %s", got)
	}
	if report.Summary.ItemQuantities["1"] != 3 || report.Summary.ItemQuantities["2"] != 1 {
		t.Errorf("unexpected item quantities: %v", report.Summary.ItemQuantities)
	}
	today := time.Now().Format("2006-01-02")
	if got := report.Summary.RevenueByDate[today].StringFixed(2); got != "35.00" {
		t.Errorf("expected today's revenue 35.00, got %s", got)
	}

	// Items sorted by descending quantity, names resolved.
	if len(report.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(report.Items))
	}
	if report.Items[0].ItemID != "1" || report.Items[0].Name != "Burger" || report.Items[0].Quantity != 3 {
		t.Errorf("unexpected top item: %+v", report.Items[0])
	}
	if report.Items[1].ItemID != "2" || report.Items[1].Name != "Fries" {
		t.Errorf("unexpected second item: %+v", report.Items[1])
	}
	if len(report.Dates) != 1 || report.Dates[0] != today {
		t.Errorf("unexpected dates: %v", report.Dates)
	}
}

func TestComputeSummary_UnknownItemFallback(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "2", Quantity: 4}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if err := f.orders.UpdateStatus("1", domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	// The catalog diverges from the ledger: item 2 disappears.
	if err := f.menuSvc.DeleteItem("2"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	report, err := f.sales.ComputeSummary()
	if err != nil {
		t.Fatalf("ComputeSummary: %v", err)
	}
	if len(report.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(report.Items))
	}
	if report.Items[0].Name != "Unknown Item" {
		t.Errorf("expected placeholder name, got %q", report.Items[0].Name)
	}
	if report.Items[0].Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", report.Items[0].Quantity)
	}
}
