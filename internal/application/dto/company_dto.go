package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	IDEmpresa     string `json:"id_empresa"`
	NombreEmpresa string `json:"nombre_empresa" validate:"required,min=1,max=250"`
	RFC           string `json:"rfc" validate:"required,min=1,max=50"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	IDEmpresa     *string `json:"id_empresa"`
	NombreEmpresa *string `json:"nombre_empresa"`
	RFC           *string `json:"rfc"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID            int64     `json:"id"`
	IDEmpresa     string    `json:"id_empresa"`
	NombreEmpresa string    `json:"nombre_empresa"`
	RFC           string    `json:"rfc"`
	IDEquipo      *int64    `json:"id_equipo"`
	CreatedAt     time.Time `json:"created_at"`
}

// CompanyListResponse listado de empresas.
type CompanyListResponse struct {
	Empresas []CompanyResponse `json:"empresas"`
}

// EmployeeRequest alta/edición de empleado. EmpresaID solo lo usa el personal interno.
type EmployeeRequest struct {
	IDEmpleado     string `json:"id_empleado"`
	NombreEmpleado string `json:"nombre_empleado" validate:"required"`
	EmpresaID      *int64 `json:"empresa_id"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID             int64  `json:"id"`
	IDEmpleado     string `json:"id_empleado"`
	NombreEmpleado string `json:"nombre_empleado"`
	EmpresaID      int64  `json:"empresa_id"`
}

// EmployeeListResponse listado de empleados.
type EmployeeListResponse struct {
	Empleados []EmployeeResponse `json:"empleados"`
}

// DocumentResponse paquete de documentos de la empresa.
type DocumentResponse struct {
	ID                int64  `json:"id"`
	EmpresaID         int64  `json:"empresa_id"`
	CSF               string `json:"csf"`
	CD                string `json:"cd"`
	RT                string `json:"rt"`
	COT               string `json:"cot"`
	ArchivoResponsiva string `json:"archivo_responsiva"`
}
