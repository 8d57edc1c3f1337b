// Package manager is the floor-manager screen: menu upkeep, active orders,
// feedback and ingredient request review.
package manager

import (
	"errors"

	"restaurant-ops/internal/app/profile"
	"restaurant-ops/internal/common/cli"
	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/feedback"
	"restaurant-ops/internal/inventory"
	"restaurant-ops/internal/ledger"
	"restaurant-ops/internal/menu"
	"restaurant-ops/internal/users"
)

type Screen struct {
	p         *cli.Prompter
	menu      menu.MenuServiceInterface
	orders    ledger.OrderServiceInterface
	feedback  feedback.FeedbackServiceInterface
	inventory inventory.RequestServiceInterface
	users     users.UserServiceInterface
	lg        *logger.Logger
}

func New(
	p *cli.Prompter,
	menuSvc menu.MenuServiceInterface,
	orders ledger.OrderServiceInterface,
	fb feedback.FeedbackServiceInterface,
	inv inventory.RequestServiceInterface,
	usersSvc users.UserServiceInterface,
) *Screen {
	return &Screen{p: p, menu: menuSvc, orders: orders, feedback: fb, inventory: inv, users: usersSvc, lg: logger.New("manager-screen")}
}

func (s *Screen) Run(sess domain.Session) {
	lg := s.lg.WithRequestID(sess.ID)
	for {
		s.p.Say("\nManager Menu (%s)", sess.Username)
		s.p.Say("1. Manage Menu")
		s.p.Say("2. View Orders")
		s.p.Say("3. View Feedback")
		s.p.Say("4. Ingredient Requests")
		s.p.Say("5. Update Profile")
		s.p.Say("6. Logout")
		choice, ok := s.p.ReadLine("Enter choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if !s.manageMenu(lg) {
				return
			}
		case "2":
			s.viewActiveOrders()
		case "3":
			s.viewFeedback()
		case "4":
			if !s.ingredientRequests() {
				return
			}
		case "5":
			if !profile.Run(s.p, s.users, &sess) {
				return
			}
		case "6":
			return
		default:
			s.p.Say("Invalid choice!")
		}
	}
}

func (s *Screen) manageMenu(lg *logger.Logger) bool {
	s.p.Say("\nMenu Management")
	s.p.Say("1. Add Item")
	s.p.Say("2. Edit Item")
	s.p.Say("3. Delete Item")
	choice, ok := s.p.ReadLine("Enter choice: ")
	if !ok {
		return false
	}
	switch choice {
	case "1":
		return s.addItem(lg)
	case "2":
		return s.editItem(lg)
	case "3":
		return s.deleteItem(lg)
	default:
		s.p.Say("Invalid choice. Please try again.")
	}
	return true
}

func (s *Screen) addItem(lg *logger.Logger) bool {
	id, ok := s.p.ReadLine("Enter item ID: ")
	if !ok {
		return false
	}
	name, ok := s.p.ReadLine("Enter item name: ")
	if !ok {
		return false
	}
	price, ok := s.p.ReadLine("Enter price: ")
	if !ok {
		return false
	}
	err := s.menu.AddItem(domain.MenuItemInput{ID: id, Name: name, Price: price})
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		s.p.Say("Item ID already exists!")
	case errors.Is(err, domain.ErrValidation):
		s.p.Say("Invalid item details!")
	case err != nil:
		lg.Error("add_menu_item_failed", err, map[string]any{"item_id": id})
		s.p.Say("Add failed: %v", err)
	default:
		s.p.Say("Menu item added successfully!")
	}
	return true
}

func (s *Screen) editItem(lg *logger.Logger) bool {
	id, ok := s.p.ReadLine("Enter item ID to edit: ")
	if !ok {
		return false
	}
	newName, ok := s.p.ReadLine("Enter new name (blank to keep): ")
	if !ok {
		return false
	}
	newPrice, ok := s.p.ReadLine("Enter new price (blank to keep): ")
	if !ok {
		return false
	}
	err := s.menu.EditItem(id, domain.MenuItemUpdate{NewName: newName, NewPrice: newPrice})
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		s.p.Say("Item ID not found!")
	case errors.Is(err, domain.ErrValidation):
		s.p.Say("Invalid price!")
	case err != nil:
		lg.Error("edit_menu_item_failed", err, map[string]any{"item_id": id})
		s.p.Say("Edit failed: %v", err)
	default:
		s.p.Say("Menu item updated successfully!")
	}
	return true
}

func (s *Screen) deleteItem(lg *logger.Logger) bool {
	id, ok := s.p.ReadLine("Enter item ID to delete: ")
	if !ok {
		return false
	}
	err := s.menu.DeleteItem(id)
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		s.p.Say("Item ID not found!")
	case err != nil:
		lg.Error("delete_menu_item_failed", err, map[string]any{"item_id": id})
		s.p.Say("Delete failed: %v", err)
	default:
		s.p.Say("Menu item deleted successfully!")
	}
	return true
}

func (s *Screen) viewActiveOrders() {
	active, err := s.orders.ListActiveOrders()
	if err != nil {
		s.p.Say("Could not load orders: %v", err)
		return
	}
	s.p.Say("\nActive Orders:")
	if len(active) == 0 {
		s.p.Say("(none)")
		return
	}
	for _, o := range active {
		s.p.Say("Order %s - Status: %s - Items: %s", o.ID, o.Status, domain.EncodeLines(o.Lines))
	}
}

func (s *Screen) viewFeedback() {
	entries, err := s.feedback.ListAll()
	if err != nil {
		s.p.Say("Could not load feedback: %v", err)
		return
	}
	if len(entries) == 0 {
		s.p.Say("No feedback available.")
		return
	}
	s.p.Say("\nCustomer Feedback:")
	for _, fb := range entries {
		s.p.Say("Order ID: %s, Customer: %s, Rating: %d, Date: %s", fb.OrderID, fb.Username, fb.Rating, fb.Date)
		s.p.Say("Comments: %s", fb.Comments)
	}
}

func (s *Screen) ingredientRequests() bool {
	all, err := s.inventory.ListAll()
	if err != nil {
		s.p.Say("Could not load requests: %v", err)
		return true
	}
	if len(all) == 0 {
		s.p.Say("No ingredient requests found")
		return true
	}
	s.p.Say("\nAll Ingredient Requests:")
	for _, req := range all {
		s.p.Say("ID: %s | %s - %d units | Requested by %s on %s | Status: %s",
			req.ID, req.Name, req.Quantity, req.RequestedBy, req.Date, req.Status)
	}

	reqID, ok := s.p.ReadLine("Enter request ID to review (or press Enter to go back): ")
	if !ok {
		return false
	}
	if reqID == "" {
		return true
	}
	decision, ok := s.p.ReadLine("Approve or Reject? (a/r): ")
	if !ok {
		return false
	}
	status := domain.RequestStatusApproved
	if decision == "r" {
		status = domain.RequestStatusRejected
	}
	err = s.inventory.Review(reqID, status)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.p.Say("Request not found!")
	case err != nil:
		s.p.Say("Review failed: %v", err)
	default:
		s.p.Say("Request %s marked %s", reqID, status)
	}
	return true
}
