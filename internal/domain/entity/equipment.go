package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// EquipmentStatus estatus del ciclo de vida de un equipo. Es un conjunto cerrado.
type EquipmentStatus string

const (
	StatusPendiente             EquipmentStatus = "pendiente"
	StatusRegistrado            EquipmentStatus = "registrado"
	StatusPorInstalar           EquipmentStatus = "por instalar"
	StatusInstalacionProgramada EquipmentStatus = "instalacion programada"
	StatusActivo                EquipmentStatus = "activo"
	StatusRechazado             EquipmentStatus = "rechazado"
)

// equipmentTransitions transiciones permitidas: pendiente → registrado → por instalar →
// instalacion programada → activo. Cualquier estado no activo puede rechazarse.
var equipmentTransitions = map[EquipmentStatus][]EquipmentStatus{
	StatusPendiente:             {StatusRegistrado, StatusRechazado},
	StatusRegistrado:            {StatusPorInstalar, StatusRechazado},
	StatusPorInstalar:           {StatusInstalacionProgramada, StatusRechazado},
	StatusInstalacionProgramada: {StatusActivo, StatusRechazado},
	StatusActivo:                {},
	StatusRechazado:             {},
}

// ParseEquipmentStatus normaliza mayúsculas, acentos y espacios ("Instalación  Programada").
func ParseEquipmentStatus(s string) (EquipmentStatus, bool) {
	st := EquipmentStatus(strings.Join(strings.Fields(foldAccents(strings.ToLower(s))), " "))
	if _, ok := equipmentTransitions[st]; !ok {
		return "", false
	}
	return st, true
}

// CanTransitionTo informa si el cambio de estatus es válido.
func (s EquipmentStatus) CanTransitionTo(next EquipmentStatus) bool {
	for _, allowed := range equipmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reaches informa si next es alcanzable avanzando por la cadena de estatus (uno o más pasos).
// Lo usan agenda y verificación, que pueden saltar pasos intermedios.
func (s EquipmentStatus) Reaches(next EquipmentStatus) bool {
	seen := map[EquipmentStatus]bool{s: true}
	queue := []EquipmentStatus{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range equipmentTransitions[cur] {
			if n == next {
				return true
			}
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Equipment equipo de cómputo censado. IDEquipo agrupa los equipos de una empresa.
type Equipment struct {
	ID              int64
	GroupID         int64 // id_equipo = empresas.id
	CompanyID       int64
	EmployeeID      *int64
	Type            string // tipo_equipo: Laptop, Desktop...
	Name            string // nombre_equipo
	Brand           string
	Model           string
	SerialNumber    string
	OperatingSystem string
	Processor       string
	RAM             string
	HardDrive       string
	HardDriveSerial string
	RegistryCode    string
	License         string
	Status          EquipmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Solo lectura (JOIN en listados de administración).
	CompanyName  string
	EmployeeName string
}

// IsLaptop informa si el tipo de equipo requiere responsiva (coincidencia parcial sin mayúsculas).
func IsLaptop(equipmentType string) bool {
	return strings.Contains(strings.ToLower(equipmentType), "laptop")
}

// EquipmentRequest registro histórico de un envío de censo.
type EquipmentRequest struct {
	ID              int64
	ClientID        int64
	CompanyID       int64
	EquipmentID     *int64
	Brand           string
	Model           string
	SerialNumber    string
	RegistryCode    string
	RAM             string
	HardDrive       string
	HardDriveSerial string
	OperatingSystem string
	Processor       string
	DeviceUserName  string // nombre_usuario_equipo
	Type            string
	Name            string
	Status          EquipmentStatus
	Scheduled       bool
	CreatedAt       time.Time

	ClientName  string
	ClientEmail string
	CompanyName string
}

// Appointment cita de instalación/censo (agenda).
type Appointment struct {
	ID          int64
	ScheduledAt time.Time
	Status      string
	StaffID     *int64
	EquipmentID int64
}
