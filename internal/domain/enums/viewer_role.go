package enums

type ViewerRole string

const (
	ViewerRoleAgency ViewerRole = "agency"
	ViewerRoleTalent ViewerRole = "talent"
	ViewerRoleAdmin  ViewerRole = "admin"
)

func (r ViewerRole) Valid() bool {
	switch r {
	case ViewerRoleAgency, ViewerRoleTalent, ViewerRoleAdmin:
		return true
	default:
		return false
	}
}
