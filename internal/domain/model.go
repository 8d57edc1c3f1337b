package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleChef     Role = "Chef"
	RoleCustomer Role = "Customer"
)

// Roles is the closed set accepted at login; anything else in the users
// dataset is treated as a corrupt account.
var Roles = []Role{RoleAdmin, RoleManager, RoleChef, RoleCustomer}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "InProgress"
	StatusCompleted  OrderStatus = "Completed"
)

var OrderStatuses = []OrderStatus{StatusPending, StatusInProgress, StatusCompleted}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Active reports whether an order still needs kitchen attention.
func (s OrderStatus) Active() bool {
	return s == StatusPending || s == StatusInProgress
}

type RequestStatus string

const (
	RequestStatusRequested RequestStatus = "Requested"
	RequestStatusApproved  RequestStatus = "Approved"
	RequestStatusRejected  RequestStatus = "Rejected"
)

type User struct {
	Username string
	Password string // stored and compared as plain text, as the data contract requires
	Role     Role
}

type MenuItem struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// OrderLine exists only while an order is being assembled. Only ItemID and
// Quantity are persisted; UnitPrice is folded into the order total at
// placement time so later menu edits never alter historical orders.
type OrderLine struct {
	ItemID    string
	Quantity  int
	UnitPrice decimal.Decimal
}

type Order struct {
	ID       string
	Customer string
	Lines    []OrderLine
	Total    decimal.Decimal
	Status   OrderStatus
	Date     string // YYYY-MM-DD
	Notes    string
}

type IngredientRequest struct {
	ID          string
	Name        string
	Quantity    int
	Status      RequestStatus
	RequestedBy string
	Date        string
}

// OrderRefNone is stored in a feedback record that references no order.
const OrderRefNone = "N/A"

type Feedback struct {
	ID       string
	Username string
	OrderID  string
	Rating   int
	Comments string
	Date     string
}

// Session carries the acting identity through the role screens. ID is a
// per-login UUID used only for log correlation, never persisted.
type Session struct {
	ID       string
	Username string
	Role     Role
}

// SalesSummary is derived from the full order set on demand and has no
// independent lifecycle.
type SalesSummary struct {
	CompletedOrders int
	TotalRevenue    decimal.Decimal
	ItemQuantities  map[string]int
	RevenueByDate   map[string]decimal.Decimal
}

type ItemSales struct {
	ItemID   string
	Name     string
	Quantity int
}

// TopItems returns per-item sales sorted by descending quantity. Ties keep
// the order in which item ids were first seen, carried in firstSeen.
func (s SalesSummary) TopItems(firstSeen []string) []ItemSales {
	items := make([]ItemSales, 0, len(s.ItemQuantities))
	for _, id := range firstSeen {
		items = append(items, ItemSales{ItemID: id, Quantity: s.ItemQuantities[id]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Quantity > items[j].Quantity
	})
	return items
}

// Dates returns the per-date revenue keys in ascending order; the fixed
// YYYY-MM-DD format makes lexicographic order chronological.
func (s SalesSummary) Dates() []string {
	dates := make([]string, 0, len(s.RevenueByDate))
	for d := range s.RevenueByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
