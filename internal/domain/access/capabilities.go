// Package access concentra la autorización por rol: cada rol tiene un conjunto fijo de acciones.
package access

import "github.com/jhoicas/portal-rdp/internal/domain/entity"

// Action acción protegida de la API.
type Action string

const (
	ManageInternalUsers Action = "usuarios_internos:gestionar"
	ManageCompanies     Action = "empresas:gestionar"
	ManageEmployees     Action = "empleados:gestionar"
	SubmitCensus        Action = "censo:enviar"
	ViewOwnCensus       Action = "censo:ver_propio"
	ReviewCensus        Action = "censo:revisar"
	ViewOwnEquipment    Action = "equipos:ver_propio"
	ViewAllEquipment    Action = "equipos:ver_todos"
	ManageEquipment     Action = "equipos:administrar"
	UseTickets          Action = "tickets:usar"
	ManageTickets       Action = "tickets:administrar"
	Chat                Action = "chat:usar"
	Pay                 Action = "pagos:pagar"
	ViewPayments        Action = "pagos:ver"
	ViewAllPayments     Action = "pagos:ver_todos"
	ViewDocuments       Action = "documentos:ver"
	ViewCatalog         Action = "catalogo:ver"
)

var capabilities = map[string]map[Action]bool{
	entity.RoleAdmin: set(
		ManageCompanies, ManageEmployees, ReviewCensus, ViewAllEquipment, ManageEquipment,
		UseTickets, ManageTickets, Chat, ViewPayments, ViewAllPayments, ViewCatalog,
	),
	entity.RoleRH: set(
		ManageInternalUsers, ManageEmployees, ViewAllEquipment, ViewCatalog,
	),
	entity.RoleUser: set(
		ViewCatalog,
	),
	entity.RoleCliente: set(
		ManageEmployees, SubmitCensus, ViewOwnCensus, ViewOwnEquipment, UseTickets, Chat,
		Pay, ViewPayments, ViewDocuments, ViewCatalog,
	),
}

// roleAliases nombres alternos aceptados para un rol.
var roleAliases = map[string]string{
	"hr": entity.RoleRH,
}

func set(actions ...Action) map[Action]bool {
	m := make(map[Action]bool, len(actions))
	for _, a := range actions {
		m[a] = true
	}
	return m
}

// Normalize devuelve el nombre canónico del rol.
func Normalize(role string) string {
	if canonical, ok := roleAliases[role]; ok {
		return canonical
	}
	return role
}

// Can informa si el rol puede ejecutar la acción.
func Can(role string, action Action) bool {
	return capabilities[Normalize(role)][action]
}

// IsStaff informa si el rol corresponde a personal interno.
func IsStaff(role string) bool {
	switch Normalize(role) {
	case entity.RoleAdmin, entity.RoleRH, entity.RoleUser:
		return true
	}
	return false
}
