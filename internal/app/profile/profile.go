// Package profile is the self-service account screen shared by every role.
package profile

import (
	"errors"

	"restaurant-ops/internal/common/cli"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/users"
)

// Run prompts for new credentials; blank keeps current. On success the live
// session picks up the new username.
func Run(p *cli.Prompter, usersSvc users.UserServiceInterface, sess *domain.Session) bool {
	p.Say("\nUpdate Profile:")
	newUsername, ok := p.ReadLine("Enter new username (current: " + sess.Username + "): ")
	if !ok {
		return false
	}
	newPassword, ok := p.ReadLine("Enter new password (leave blank to keep current): ")
	if !ok {
		return false
	}
	confirm := ""
	if newPassword != "" {
		confirm, ok = p.ReadLine("Confirm new password: ")
		if !ok {
			return false
		}
	}

	updated, err := usersSvc.UpdateProfile(sess.Username, domain.ProfileUpdate{
		NewUsername:     newUsername,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		p.Say("Username already taken! Choose another.")
	case errors.Is(err, domain.ErrPasswordMismatch):
		p.Say("Passwords do not match!")
	case errors.Is(err, domain.ErrNotFound):
		p.Say("User not found!")
	case err != nil:
		p.Say("Update failed: %v", err)
	default:
		sess.Username = updated
		p.Say("Profile updated successfully!")
	}
	return true
}
