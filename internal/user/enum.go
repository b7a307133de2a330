package user

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleManager   Role = "manager"
)

var AllRoles = []Role{
	RoleCandidate,
	RoleManager,
}

func (r Role) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
