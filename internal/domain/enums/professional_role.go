package enums

type ProfessionalRole string

const (
	RoleModel        ProfessionalRole = "Model"
	RolePhotographer ProfessionalRole = "Photographer"
	RoleMakeupArtist ProfessionalRole = "Make-up Artist"
)

func (r ProfessionalRole) Valid() bool {
	switch r {
	case RoleModel, RolePhotographer, RoleMakeupArtist:
		return true
	default:
		return false
	}
}
