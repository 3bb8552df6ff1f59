package domain

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleFrontdesk = "frontdesk"
	RoleProvider  = "provider"
)

// ValidRole verifica que el rol pertenezca al conjunto conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleFrontdesk, RoleProvider:
		return true
	}
	return false
}

// Principal es la identidad por request derivada de un token verificado.
// Es un valor inmutable: se construye una sola vez en el middleware de auth
// y viaja como argumento explícito; ningún componente re-deriva identidad
// desde el cuerpo del request.
type Principal struct {
	UserID   int64
	Username string
	Role     string
}
