package constvars

// Role selects the backend route namespace, /{role}/...
type Role string

const (
	RoleUser         Role = "user"
	RolePsychologist Role = "psychologist"
	RoleAdmin        Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RolePsychologist, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
