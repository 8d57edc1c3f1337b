// Package admin is the administrator screen: staff accounts, the sales
// report and the feedback log.
package admin

import (
	"errors"

	"restaurant-ops/internal/app/profile"
	"restaurant-ops/internal/common/cli"
	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/feedback"
	"restaurant-ops/internal/sales"
	"restaurant-ops/internal/users"
)

type Screen struct {
	p        *cli.Prompter
	users    users.UserServiceInterface
	sales    sales.SalesServiceInterface
	feedback feedback.FeedbackServiceInterface
	lg       *logger.Logger
}

func New(
	p *cli.Prompter,
	usersSvc users.UserServiceInterface,
	salesSvc sales.SalesServiceInterface,
	fb feedback.FeedbackServiceInterface,
) *Screen {
	return &Screen{p: p, users: usersSvc, sales: salesSvc, feedback: fb, lg: logger.New("admin-screen")}
}

func (s *Screen) Run(sess domain.Session) {
	lg := s.lg.WithRequestID(sess.ID)
	for {
		s.p.Say("\nAdmin Menu (%s)", sess.Username)
		s.p.Say("1. Manage Staff")
		s.p.Say("2. View Sales Report")
		s.p.Say("3. View Feedback")
		s.p.Say("4. Update Profile")
		s.p.Say("5. Logout")
		choice, ok := s.p.ReadLine("Enter choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if !s.manageStaff(lg) {
				return
			}
		case "2":
			s.salesReport()
		case "3":
			s.viewFeedback()
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

func (s *Screen) manageStaff(lg *logger.Logger) bool {
	s.p.Say("\nStaff Management")
	s.p.Say("1. Add Staff")
	s.p.Say("2. Edit Staff")
	s.p.Say("3. Delete Staff")
	choice, ok := s.p.ReadLine("Enter choice: ")
	if !ok {
		return false
	}
	switch choice {
	case "1":
		return s.addStaff(lg)
	case "2":
		return s.editStaff(lg)
	case "3":
		return s.deleteStaff(lg)
	default:
		s.p.Say("Invalid choice. Please try again.")
	}
	return true
}

func (s *Screen) addStaff(lg *logger.Logger) bool {
	username, ok := s.p.ReadLine("Enter new username: ")
	if !ok {
		return false
	}
	password, ok := s.p.ReadLine("Enter password: ")
	if !ok {
		return false
	}
	role, ok := s.p.ReadLine("Enter role (Manager/Chef): ")
	if !ok {
		return false
	}
	err := s.users.AddStaff(domain.StaffInput{Username: username, Password: password, Role: domain.Role(role)})
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		s.p.Say("Username already exists!")
	case errors.Is(err, domain.ErrValidation):
		s.p.Say("Invalid role!")
	case err != nil:
		lg.Error("add_staff_failed", err, map[string]any{"username": username})
		s.p.Say("Add failed: %v", err)
	default:
		s.p.Say("Staff added successfully!")
	}
	return true
}

func (s *Screen) editStaff(lg *logger.Logger) bool {
	username, ok := s.p.ReadLine("Enter the username of the staff member to edit: ")
	if !ok {
		return false
	}
	newUsername, ok := s.p.ReadLine("Enter new username (blank to keep): ")
	if !ok {
		return false
	}
	newPassword, ok := s.p.ReadLine("Enter new password (blank to keep): ")
	if !ok {
		return false
	}
	newRole, ok := s.p.ReadLine("Enter new role (blank to keep): ")
	if !ok {
		return false
	}
	err := s.users.EditStaff(username, domain.StaffUpdate{
		NewUsername: newUsername,
		NewPassword: newPassword,
		NewRole:     domain.Role(newRole),
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.p.Say("Staff member not found!")
	case errors.Is(err, domain.ErrDuplicateKey):
		s.p.Say("Username already taken!")
	case errors.Is(err, domain.ErrValidation):
		s.p.Say("Invalid role!")
	case err != nil:
		lg.Error("edit_staff_failed", err, map[string]any{"username": username})
		s.p.Say("Edit failed: %v", err)
	default:
		s.p.Say("Staff details for %s updated successfully!", username)
	}
	return true
}

func (s *Screen) deleteStaff(lg *logger.Logger) bool {
	username, ok := s.p.ReadLine("Enter the username of the staff member to delete: ")
	if !ok {
		return false
	}
	err := s.users.DeleteStaff(username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.p.Say("Staff member not found!")
	case err != nil:
		lg.Error("delete_staff_failed", err, map[string]any{"username": username})
		s.p.Say("Delete failed: %v", err)
	default:
		s.p.Say("Staff member %s deleted successfully!", username)
	}
	return true
}

func (s *Screen) salesReport() {
	report, err := s.sales.ComputeSummary()
	if err != nil {
		s.p.Say("Could not compute the sales report: %v", err)
		return
	}
	s.p.Say("\nSales Report")
	s.p.Say("Total Completed Orders: %d", report.Summary.CompletedOrders)
	s.p.Say("Total Sales Revenue: RS%s", report.Summary.TotalRevenue.StringFixed(2))

	s.p.Say("\nMost Ordered Items:")
	for _, it := range report.Items {
		s.p.Say("%s: %d ordered", it.Name, it.Quantity)
	}

	s.p.Say("\nSales by Date:")
	for _, date := range report.Dates {
		s.p.Say("%s: RS%s", date, report.Summary.RevenueByDate[date].StringFixed(2))
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
