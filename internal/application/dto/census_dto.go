package dto

import "time"

// CensusRequest envío del formulario de censo (multipart o JSON). La responsiva llega como archivo aparte.
type CensusRequest struct {
	Marca               string `json:"marca" form:"marca"`
	Modelo              string `json:"modelo" form:"modelo"`
	NumeroSerie         string `json:"no_serie" form:"no_serie"`
	CodigoRegistro      string `json:"codigo_registro" form:"codigo_registro"`
	MemoriaRAM          string `json:"memoria_ram" form:"memoria_ram"`
	DiscoDuro           string `json:"disco_duro" form:"disco_duro"`
	SerieDiscoDuro      string `json:"serie_disco_duro" form:"serie_disco_duro"`
	SistemaOperativo    string `json:"sistema_operativo" form:"sistema_operativo"`
	Procesador          string `json:"procesador" form:"procesador"`
	NombreUsuarioEquipo string `json:"nombre_usuario_equipo" form:"nombre_usuario_equipo"`
	TipoEquipo          string `json:"tipo_equipo" form:"tipo_equipo"`
	NombreEquipo        string `json:"nombre_equipo" form:"nombre_equipo"`
	EmpleadoID          *int64 `json:"empleado_id" form:"empleado_id"`
}

// UploadedFile archivo recibido en la petición, ya leído por el handler.
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CensusResponse resultado del envío de censo.
type CensusResponse struct {
	Message string                   `json:"message"`
	Request EquipmentRequestResponse `json:"request"`
	Equipo  EquipmentResponse        `json:"equipo"`
}

// EquipmentRequestResponse registro histórico de un censo.
type EquipmentRequestResponse struct {
	ID                  int64     `json:"id"`
	ClienteID           int64     `json:"cliente_id"`
	EmpresaID           int64     `json:"empresa_id"`
	EquipoID            *int64    `json:"equipo_id"`
	Marca               string    `json:"marca"`
	Modelo              string    `json:"modelo"`
	NumeroSerie         string    `json:"no_serie"`
	CodigoRegistro      string    `json:"codigo_registro"`
	MemoriaRAM          string    `json:"memoria_ram"`
	DiscoDuro           string    `json:"disco_duro"`
	SerieDiscoDuro      string    `json:"serie_disco_duro"`
	SistemaOperativo    string    `json:"sistema_operativo"`
	Procesador          string    `json:"procesador"`
	NombreUsuarioEquipo string    `json:"nombre_usuario_equipo"`
	TipoEquipo          string    `json:"tipo_equipo"`
	NombreEquipo        string    `json:"nombre_equipo"`
	Estatus             string    `json:"estatus"`
	Agendado            bool      `json:"agendado"`
	CreatedAt           time.Time `json:"created_at"`
	NombreCliente       string    `json:"nombre_cliente,omitempty"`
	EmailCliente        string    `json:"email_cliente,omitempty"`
	NombreEmpresa       string    `json:"nombre_empresa,omitempty"`
}

// EquipmentRequestListResponse listado de solicitudes.
type EquipmentRequestListResponse struct {
	Requests []EquipmentRequestResponse `json:"requests"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID               int64     `json:"id"`
	IDEquipo         int64     `json:"id_equipo"`
	EmpresaID        int64     `json:"empresa_id"`
	EmpleadoID       *int64    `json:"empleado_id"`
	TipoEquipo       string    `json:"tipo_equipo"`
	NombreEquipo     string    `json:"nombre_equipo"`
	Marca            string    `json:"marca"`
	Modelo           string    `json:"modelo"`
	NumeroSerie      string    `json:"numero_serie"`
	SistemaOperativo string    `json:"sistema_operativo"`
	Procesador       string    `json:"procesador"`
	MemoriaRAM       string    `json:"memoria_ram"`
	DiscoDuro        string    `json:"disco_duro"`
	SerieDiscoDuro   string    `json:"serie_disco_duro"`
	CodigoRegistro   string    `json:"codigo_registro"`
	Licencia         string    `json:"licencia,omitempty"`
	Estatus          string    `json:"estatus"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	NombreEmpresa    string    `json:"nombre_empresa,omitempty"`
	NombreEmpleado   string    `json:"nombre_empleado,omitempty"`
}

// EquipmentListResponse listado de equipos.
type EquipmentListResponse struct {
	Equipos []EquipmentResponse `json:"equipos"`
}

// UpdateEquipmentRequest edición de un equipo por su empresa (campos opcionales).
type UpdateEquipmentRequest struct {
	TipoEquipo       *string `json:"tipo_equipo"`
	NombreEquipo     *string `json:"nombre_equipo"`
	Marca            *string `json:"marca"`
	Modelo           *string `json:"modelo"`
	NumeroSerie      *string `json:"numero_serie"`
	SistemaOperativo *string `json:"sistema_operativo"`
	Procesador       *string `json:"procesador"`
	MemoriaRAM       *string `json:"memoria_ram"`
	DiscoDuro        *string `json:"disco_duro"`
	SerieDiscoDuro   *string `json:"serie_disco_duro"`
	EmpleadoID       *int64  `json:"empleado_id"`
}

// StatusChangeRequest cambio de estatus de un equipo (admin).
type StatusChangeRequest struct {
	Estatus string `json:"estatus" validate:"required"`
}

// ScheduleCensusRequest agenda la instalación de un equipo.
type ScheduleCensusRequest struct {
	EquipoID    int64     `json:"equipo_id" validate:"required"`
	DiaAgendado time.Time `json:"dia_agendado" validate:"required"`
	Estatus     string    `json:"estatus"`
}

// AppointmentResponse cita creada.
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	DiaAgendado time.Time `json:"dia_agendado"`
	Estatus     string    `json:"estatus"`
	EquipoID    int64     `json:"equipo_id"`
	PersonalID  *int64    `json:"personal_id"`
}

// VerifyCensusRequest verificación del censo por el personal en sitio.
type VerifyCensusRequest struct {
	EquipoID       int64  `json:"equipo_id" validate:"required"`
	CodigoRegistro string `json:"codigo_registro"`
	Licencia       string `json:"licencia"`
}

// LicenseResponse código de registro y licencia de un equipo.
type LicenseResponse struct {
	EquipoID       int64  `json:"equipo_id"`
	CodigoRegistro string `json:"codigo_registro"`
	Licencia       string `json:"licencia"`
}
