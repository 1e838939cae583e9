package domain

type Role string

const (
	RoleContributor Role = "contributor"
	RoleAdmin       Role = "admin"
)

type User struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
