package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/menu"
)

type fixture struct {
	dir     string
	store   *textstore.Store
	orders  OrderServiceInterface
	repo    OrderRepositoryInterface
	menuSvc menu.MenuServiceInterface
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	store, err := textstore.New(dir)
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
	repo := NewOrderRepository(store)
	return fixture{
		dir:     dir,
		store:   store,
		orders:  NewOrderService(repo, menuSvc),
		repo:    repo,
		menuSvc: menuSvc,
	}
}

func TestPlaceOrder_AssignsSequentialIDs(t *testing.T) {
	f := newFixture(t)
	for i, want := range []string{"1", "2", "3"} {
		order, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}})
		if err != nil {
			t.Fatalf("placement %d: %v", i+1, err)
		}
		if order.ID != want {
			t.Errorf("placement %d: expected id %q, got %q", i+1, want, order.ID)
		}
	}
}

func TestPlaceOrder_ComputesFrozenTotal(t *testing.T) {
	f := newFixture(t)
	order, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{
		{ItemID: "1", Quantity: 2},
		{ItemID: "2", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if got := order.Total.StringFixed(2); got != "25.00" {
		t.Errorf("expected total 25.00, got %s", got)
	}
	if order.Status != domain.StatusPending {
		t.Errorf("expected status Pending, got %s", order.Status)
	}
	if order.Date != time.Now().Format("2006-01-02") {
		t.Errorf("unexpected order date %s", order.Date)
	}

	// Later menu price edits must not alter the persisted total.
	if err := f.menuSvc.EditItem("1", domain.MenuItemUpdate{NewPrice: "99.99"}); err != nil {
		t.Fatalf("EditItem: %v", err)
	}
	reloaded, err := f.repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(reloaded) != 1 {
		t.Fatalf("expected 1 order, got %d", len(reloaded))
	}
	if got := reloaded[0].Total.StringFixed(2); got != "25.00" {
		t.Errorf("expected reloaded total 25.00, got %s", got)
	}
}

func TestPlaceOrder_UnknownItemPersistsNothing(t *testing.T) {
	f := newFixture(t)
	_, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{
		{ItemID: "1", Quantity: 1},
		{ItemID: "404", Quantity: 1},
	})
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	count, err := f.repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no persisted orders, got %d", count)
	}
}

func TestPlaceOrder_EmptyOrder(t *testing.T) {
	f := newFixture(t)
	_, err := f.orders.PlaceOrder("alice", nil)
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	count, err := f.repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no persisted orders, got %d", count)
	}
}

func TestPlaceOrder_InvalidQuantity(t *testing.T) {
	f := newFixture(t)
	for _, qty := range []int{0, -2} {
		_, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: qty}})
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestPlaceOrder_RoundTripReproducesOrder(t *testing.T) {
	f := newFixture(t)
	placed, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{
		{ItemID: "2", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	reloaded, err := f.repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(reloaded) != 1 {
		t.Fatalf("expected 1 order, got %d", len(reloaded))
	}
	got := reloaded[0]
	if got.ID != placed.ID || got.Customer != placed.Customer || got.Date != placed.Date ||
		got.Status != placed.Status || got.Notes != placed.Notes {
		t.Errorf("reloaded order differs: %+v vs %+v", got, placed)
	}
	if got.Total.StringFixed(2) != placed.Total.StringFixed(2) {
		t.Errorf("total changed across round trip: %s vs %s", got.Total, placed.Total)
	}
	if domain.EncodeLines(got.Lines) != domain.EncodeLines(placed.Lines) {
		t.Errorf("lines changed across round trip: %v vs %v", got.Lines, placed.Lines)
	}
}

func TestListOrdersForCustomer_FiltersExactly(t *testing.T) {
	f := newFixture(t)
	for _, customer := range []string{"alice", "bob", "alice"} {
		if _, err := f.orders.PlaceOrder(customer, []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
	}
	mine, err := f.orders.ListOrdersForCustomer("alice")
	if err != nil {
		t.Fatalf("ListOrdersForCustomer: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(mine))
	}
	if mine[0].ID != "1" || mine[1].ID != "3" {
		t.Errorf("expected storage order [1 3], got [%s %s]", mine[0].ID, mine[1].ID)
	}
}

func TestListActiveOrders(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		if _, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
	}
	if err := f.orders.UpdateStatus("1", domain.StatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := f.orders.UpdateStatus("2", domain.StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	active, err := f.orders.ListActiveOrders()
	if err != nil {
		t.Fatalf("ListActiveOrders: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active orders, got %d", len(active))
	}
	if active[0].ID != "2" || active[1].ID != "3" {
		t.Errorf("expected active orders [2 3], got [%s %s]", active[0].ID, active[1].ID)
	}
}

func TestUpdateStatus_UnknownOrderLeavesFileUntouched(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	path := filepath.Join(f.dir, Dataset)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	err = f.orders.UpdateStatus("404", domain.StatusCompleted)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("orders file changed:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	err := f.orders.UpdateStatus("1", domain.OrderStatus("Cancelled"))
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	reloaded, err := f.repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if reloaded[0].Status != domain.StatusPending {
		t.Errorf("expected status unchanged, got %s", reloaded[0].Status)
	}
}

func TestUpdateStatus_AnyJumpWithinSetIsAccepted(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	// Completed is not terminal; backwards assignment stays legal.
	for _, status := range []domain.OrderStatus{domain.StatusCompleted, domain.StatusPending, domain.StatusInProgress} {
		if err := f.orders.UpdateStatus("1", status); err != nil {
			t.Errorf("UpdateStatus(%s): %v", status, err)
		}
	}
}

func TestListAll_SkipsMalformedRecords(t *testing.T) {
	f := newFixture(t)
	if _, err := f.orders.PlaceOrder("alice", []domain.OrderLineInput{{ItemID: "1", Quantity: 1}}); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	path := filepath.Join(f.dir, Dataset)
	fh, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := fh.WriteString("garbage,row\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	fh.Close()

	orders, err := f.repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("expected malformed record skipped, got %d orders", len(orders))
	}
	// Raw records still count toward id assignment.
	count, err := f.repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected raw count 2, got %d", count)
	}
}
