// Package chef is the kitchen screen: active orders, status updates and
// ingredient requests.
package chef

import (
	"errors"

	"restaurant-ops/internal/app/profile"
	"restaurant-ops/internal/common/cli"
	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/inventory"
	"restaurant-ops/internal/ledger"
	"restaurant-ops/internal/users"
)

type Screen struct {
	p         *cli.Prompter
	orders    ledger.OrderServiceInterface
	inventory inventory.RequestServiceInterface
	users     users.UserServiceInterface
	lg        *logger.Logger
}

func New(
	p *cli.Prompter,
	orders ledger.OrderServiceInterface,
	inv inventory.RequestServiceInterface,
	usersSvc users.UserServiceInterface,
) *Screen {
	return &Screen{p: p, orders: orders, inventory: inv, users: usersSvc, lg: logger.New("chef-screen")}
}

func (s *Screen) Run(sess domain.Session) {
	lg := s.lg.WithRequestID(sess.ID)
	for {
		s.p.Say("\nChef Menu (%s)", sess.Username)
		s.p.Say("1. View Orders")
		s.p.Say("2. Update Order Status")
		s.p.Say("3. Manage Ingredient Requests")
		s.p.Say("4. Update Profile")
		s.p.Say("5. Logout")
		choice, ok := s.p.ReadLine("Enter choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			s.viewActiveOrders()
		case "2":
			if !s.updateStatus(lg) {
				return
			}
		case "3":
			if !s.manageRequests(sess) {
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

func (s *Screen) updateStatus(lg *logger.Logger) bool {
	s.viewActiveOrders()
	orderID, ok := s.p.ReadLine("Enter Order ID to update status: ")
	if !ok {
		return false
	}
	status, ok := s.p.ReadLine("Enter new status (Pending, InProgress, Completed): ")
	if !ok {
		return false
	}

	err := s.orders.UpdateStatus(orderID, domain.OrderStatus(status))
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		s.p.Say("Invalid status!")
	case errors.Is(err, domain.ErrOrderNotFound):
		s.p.Say("Order ID not found!")
	case err != nil:
		lg.Error("order_status_update_failed", err, map[string]any{"order_id": orderID})
		s.p.Say("Update failed: %v", err)
	default:
		s.p.Say("Order %s status updated to %s!", orderID, status)
	}
	return true
}

func (s *Screen) manageRequests(sess domain.Session) bool {
	for {
		s.p.Say("\nManage Ingredient Requests")
		s.p.Say("1. Add New Request")
		s.p.Say("2. Edit Existing Request")
		s.p.Say("3. Delete Request")
		s.p.Say("4. Return to Chef Menu")
		choice, ok := s.p.ReadLine("Enter choice: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if !s.addRequest(sess) {
				return false
			}
		case "2":
			if !s.editRequest(sess) {
				return false
			}
		case "3":
			if !s.deleteRequest(sess) {
				return false
			}
		case "4":
			return true
		default:
			s.p.Say("Invalid choice!")
		}
	}
}

func (s *Screen) addRequest(sess domain.Session) bool {
	name, ok := s.p.ReadLine("Enter ingredient name: ")
	if !ok {
		return false
	}
	qty, ok := s.p.ReadInt("Enter quantity needed: ")
	if !ok {
		return false
	}
	req, err := s.inventory.Add(sess.Username, domain.IngredientInput{Name: name, Quantity: qty})
	if err != nil {
		s.p.Say("Request failed: %v", err)
		return true
	}
	s.p.Say("Successfully requested %d units of %s (request %s)", req.Quantity, req.Name, req.ID)
	return true
}

func (s *Screen) editRequest(sess domain.Session) bool {
	mine, err := s.inventory.ListByOwner(sess.Username)
	if err != nil {
		s.p.Say("Could not load requests: %v", err)
		return true
	}
	editable := mine[:0]
	for _, req := range mine {
		if req.Status == domain.RequestStatusRequested {
			editable = append(editable, req)
		}
	}
	if len(editable) == 0 {
		s.p.Say("No editable requests found (only 'Requested' status can be edited).")
		return true
	}
	s.p.Say("\nYour Active Requests:")
	for _, req := range editable {
		s.p.Say("ID: %s | %s - %d units | Requested on %s", req.ID, req.Name, req.Quantity, req.Date)
	}

	reqID, ok := s.p.ReadLine("Enter request ID to edit: ")
	if !ok {
		return false
	}
	newName, ok := s.p.ReadLine("Enter new name (blank to keep): ")
	if !ok {
		return false
	}
	newQty, ok := s.p.ReadInt("Enter new quantity: ")
	if !ok {
		return false
	}

	err = s.inventory.EditOwn(sess.Username, reqID, newName, newQty)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.p.Say("Invalid ID or request not editable")
	case errors.Is(err, domain.ErrInvalidQuantity):
		s.p.Say("Quantity must be a positive number!")
	case err != nil:
		s.p.Say("Update failed: %v", err)
	default:
		s.p.Say("Request updated successfully")
	}
	return true
}

func (s *Screen) deleteRequest(sess domain.Session) bool {
	mine, err := s.inventory.ListByOwner(sess.Username)
	if err != nil {
		s.p.Say("Could not load requests: %v", err)
		return true
	}
	if len(mine) == 0 {
		s.p.Say("You have no active requests")
		return true
	}
	s.p.Say("\nYour Requests:")
	for _, req := range mine {
		s.p.Say("ID: %s | %s - %d units | Status: %s", req.ID, req.Name, req.Quantity, req.Status)
	}
	reqID, ok := s.p.ReadLine("Enter request ID to delete: ")
	if !ok {
		return false
	}
	if err := s.inventory.DeleteOwn(sess.Username, reqID); err != nil {
		s.p.Say("Request not found or not authorized")
		return true
	}
	s.p.Say("Request deleted successfully")
	return true
}
