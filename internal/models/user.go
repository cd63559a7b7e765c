package models

const (
	RoleAdmin  = "Admin"
	RoleDealer = "Dealer"
	RoleBuyer  = "Buyer"
)

// Session is the identity attached to a request after role selection.
type Session struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDealer, RoleBuyer:
		return true
	}
	return false
}
