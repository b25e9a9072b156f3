package entity

import "time"

// Company representa una empresa cliente (tenant) del portal.
type Company struct {
	ID               int64
	Code             string // id_empresa: código externo
	Name             string
	RFC              string // identificador fiscal
	DocumentID       *int64
	EquipmentGroupID *int64 // se asigna al propio ID en el primer censo
	StripeCustomerID string
	CreatedAt        time.Time
}

// Document paquete de documentos de una empresa (uno por empresa).
type Document struct {
	ID             int64
	CompanyID      int64
	CSF            string
	CD             string
	RT             string
	COT            string
	ResponsivaPath string
}

// Employee empleado de una empresa cliente; asignable como responsable de un equipo.
type Employee struct {
	ID        int64
	Code      string // id_empleado
	Name      string
	CompanyID int64
}
