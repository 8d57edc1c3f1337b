// Package customer is the customer-facing screen: place orders, check
// their status, leave feedback.
package customer

import (
	"errors"

	"restaurant-ops/internal/app/profile"
	"restaurant-ops/internal/common/cli"
	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/feedback"
	"restaurant-ops/internal/ledger"
	"restaurant-ops/internal/menu"
	"restaurant-ops/internal/users"
)

type Screen struct {
	p        *cli.Prompter
	catalog  menu.Catalog
	orders   ledger.OrderServiceInterface
	feedback feedback.FeedbackServiceInterface
	users    users.UserServiceInterface
	lg       *logger.Logger
}

func New(
	p *cli.Prompter,
	catalog menu.Catalog,
	orders ledger.OrderServiceInterface,
	fb feedback.FeedbackServiceInterface,
	usersSvc users.UserServiceInterface,
) *Screen {
	return &Screen{p: p, catalog: catalog, orders: orders, feedback: fb, users: usersSvc, lg: logger.New("customer-screen")}
}

func (s *Screen) Run(sess domain.Session) {
	lg := s.lg.WithRequestID(sess.ID)
	for {
		s.p.Say("\nCustomer Menu (%s)", sess.Username)
		s.p.Say("1. Place Order")
		s.p.Say("2. View Order Status")
		s.p.Say("3. Submit Feedback")
		s.p.Say("4. Update Profile")
		s.p.Say("5. Logout")
		choice, ok := s.p.ReadLine("Enter choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if !s.placeOrder(sess, lg) {
				return
			}
		case "2":
			s.viewOrders(sess)
		case "3":
			if !s.submitFeedback(sess) {
				return
			}
		case "4":
			if !profile.Run(s.p, s.users, &sess) {
				return
			}
		case "5":
			return
		default:
			s.p.Say("Invalid choice!")
		}
	}
}

func (s *Screen) placeOrder(sess domain.Session, lg *logger.Logger) bool {
	items, err := s.catalog.ListAll()
	if err != nil {
		s.p.Say("Could not load the menu: %v", err)
		return true
	}
	if len(items) == 0 {
		s.p.Say("The menu is currently empty. Please try again later.")
		return true
	}

	s.p.Say("\nMenu:")
	for _, it := range items {
		s.p.Say("%s. %s - RS%s", it.ID, it.Name, it.Price.StringFixed(2))
	}

	var lines []domain.OrderLineInput
	for {
		itemID, ok := s.p.ReadLine("Enter item ID to order (or type 'done' to finish): ")
		if !ok {
			return false
		}
		if itemID == "done" {
			break
		}
		name, err := s.catalog.LookupName(itemID)
		if err != nil {
			s.p.Say("Invalid item ID! Please try again.")
			continue
		}
		qty, ok := s.p.ReadInt("Enter quantity for " + name + ": ")
		if !ok {
			return false
		}
		if qty <= 0 {
			s.p.Say("Invalid quantity! Please enter a valid number.")
			continue
		}
		lines = append(lines, domain.OrderLineInput{ItemID: itemID, Quantity: qty})
	}

	order, err := s.orders.PlaceOrder(sess.Username, lines)
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		s.p.Say("No items selected! Order not placed.")
	case errors.Is(err, domain.ErrItemNotFound):
		s.p.Say("An item vanished from the menu before the order was saved. Order not placed.")
	case errors.Is(err, domain.ErrInvalidQuantity):
		s.p.Say("Invalid quantity! Order not placed.")
	case err != nil:
		lg.Error("place_order_failed", err, map[string]any{"customer": sess.Username})
		s.p.Say("Order failed: %v", err)
	default:
		s.p.Say("\nOrder placed successfully! Order ID: %s", order.ID)
		s.p.Say("Total Price: RS%s", order.Total.StringFixed(2))
		s.p.Say("Status: %s", order.Status)
	}
	return true
}

func (s *Screen) viewOrders(sess domain.Session) {
	orders, err := s.orders.ListOrdersForCustomer(sess.Username)
	if err != nil {
		s.p.Say("Could not load your orders: %v", err)
		return
	}
	if len(orders) == 0 {
		s.p.Say("\nYou have no orders yet.")
		return
	}
	s.p.Say("\nYour Orders:")
	for _, o := range orders {
		s.p.Say("Order ID: %s | Date: %s | Total: RS%s | Status: %s", o.ID, o.Date, o.Total.StringFixed(2), o.Status)
		s.p.Say("Items: %s", domain.EncodeLines(o.Lines))
		if o.Notes != "" {
			s.p.Say("Notes: %s", o.Notes)
		}
	}
}

func (s *Screen) submitFeedback(sess domain.Session) bool {
	s.p.Say("\nFeedback Form")
	orderID, ok := s.p.ReadLine("Enter Order ID (or press Enter to skip): ")
	if !ok {
		return false
	}
	var rating int
	for {
		rating, ok = s.p.ReadInt("Rate us (1-5 stars): ")
		if !ok {
			return false
		}
		if rating >= 1 && rating <= 5 {
			break
		}
		s.p.Say("Invalid input! Please enter a number between 1 and 5.")
	}
	comments, ok := s.p.ReadLine("Write your feedback: ")
	if !ok {
		return false
	}
	if comments == "" {
		s.p.Say("Feedback cannot be empty!")
		return true
	}

	fb, linked, err := s.feedback.Submit(sess.Username, domain.FeedbackInput{
		OrderID:  orderID,
		Rating:   rating,
		Comments: comments,
	})
	if err != nil {
		s.p.Say("Feedback failed: %v", err)
		return true
	}
	if orderID != "" && !linked {
		s.p.Say("Order ID not found! Recorded without an Order ID.")
	}
	s.p.Say("Thank you for your feedback! (ref %s)", fb.ID)
	return true
}
