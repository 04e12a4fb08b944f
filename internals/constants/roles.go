package constants

// Role aplikasi. Default snapshot memakai RoleCoordinator (satu pengguna lokal).
const (
	RoleCoordinator = "Coordinador"
	RoleDocente     = "Docente"
)

var AllRoles = []string{
	RoleCoordinator,
	RoleDocente,
}
