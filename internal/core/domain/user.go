package domain

const RoleAdmin = "admin"

// User models an account in the back office. Password holds the bcrypt
// digest and is tagged out of every JSON representation, so no handler
// can leak it by accident.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Rol      string `json:"rol"`
	Image    string `json:"image,omitempty"`
}
