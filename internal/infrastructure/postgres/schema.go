package postgres

import (
	"context"
	"fmt"
)

// schemaStatements DDL idempotente; se aplica completo en cada arranque.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuarios_internos (
		id SERIAL PRIMARY KEY,
		nombre_usuario VARCHAR(150),
		apellido_usuario VARCHAR(150),
		email VARCHAR(254) UNIQUE,
		password TEXT,
		rol VARCHAR(50) DEFAULT 'user',
		activo BOOLEAN DEFAULT true,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS empresas (
		id SERIAL PRIMARY KEY,
		id_empresa VARCHAR(100),
		nombre_empresa VARCHAR(250),
		rfc VARCHAR(50),
		id_documento INTEGER,
		id_equipo INTEGER,
		stripe_customer_id VARCHAR(255)
	)`,
	`ALTER TABLE empresas ADD COLUMN IF NOT EXISTS id_equipo INTEGER`,
	`ALTER TABLE empresas ADD COLUMN IF NOT EXISTS stripe_customer_id VARCHAR(255)`,
	`ALTER TABLE empresas ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP`,
	`CREATE UNIQUE INDEX IF NOT EXISTS empresas_rfc_key ON empresas (rfc)`,
	`CREATE TABLE IF NOT EXISTS usuarios_empresas (
		id SERIAL PRIMARY KEY,
		id_usuario VARCHAR(150),
		nombre_usuario VARCHAR(150),
		apellido_usuario VARCHAR(150),
		email VARCHAR(254),
		password TEXT,
		nombre_profile VARCHAR(200),
		empresa_id INTEGER REFERENCES empresas(id) ON DELETE SET NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS usuarios_empresas_email_key ON usuarios_empresas (email)`,
	`CREATE TABLE IF NOT EXISTS empleados (
		id SERIAL PRIMARY KEY,
		id_empleado VARCHAR(100),
		nombre_empleado VARCHAR(250),
		empresa_id INTEGER REFERENCES empresas(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS documentos (
		id SERIAL PRIMARY KEY,
		empresa_id INTEGER REFERENCES empresas(id) ON DELETE CASCADE,
		csf VARCHAR(255),
		cd VARCHAR(255),
		rt VARCHAR(255),
		cot VARCHAR(255),
		archivo_responsiva VARCHAR(500)
	)`,
	`ALTER TABLE documentos ADD COLUMN IF NOT EXISTS archivo_responsiva VARCHAR(500)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS documentos_empresa_id_key ON documentos (empresa_id)`,
	`CREATE TABLE IF NOT EXISTS equipos (
		id SERIAL PRIMARY KEY,
		id_equipo INTEGER,
		empresa_id INTEGER REFERENCES empresas(id) ON DELETE CASCADE,
		empleado_id INTEGER REFERENCES empleados(id) ON DELETE SET NULL,
		tipo_equipo VARCHAR(120),
		nombre_equipo VARCHAR(150),
		marca VARCHAR(120),
		modelo VARCHAR(120),
		numero_serie VARCHAR(200),
		sistema_operativo VARCHAR(120),
		procesador VARCHAR(120),
		ram VARCHAR(50),
		disco_duro VARCHAR(100),
		serie_disco_duro VARCHAR(200),
		codigo_registro VARCHAR(150),
		licencia TEXT,
		status VARCHAR(50) DEFAULT 'pendiente',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`ALTER TABLE equipos ADD COLUMN IF NOT EXISTS empresa_id INTEGER REFERENCES empresas(id) ON DELETE CASCADE`,
	`ALTER TABLE equipos ADD COLUMN IF NOT EXISTS nombre_equipo VARCHAR(150)`,
	`ALTER TABLE equipos ADD COLUMN IF NOT EXISTS serie_disco_duro VARCHAR(200)`,
	`ALTER TABLE equipos ADD COLUMN IF NOT EXISTS licencia TEXT`,
	`ALTER TABLE equipos ADD COLUMN IF NOT EXISTS status VARCHAR(50) DEFAULT 'pendiente'`,
	`ALTER TABLE equipos ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP`,
	`ALTER TABLE equipos ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP`,
	`CREATE TABLE IF NOT EXISTS equipment_requests (
		id SERIAL PRIMARY KEY,
		cliente_id INTEGER REFERENCES usuarios_empresas(id) ON DELETE CASCADE,
		empresa_id INTEGER,
		equipo_id INTEGER REFERENCES equipos(id) ON DELETE SET NULL,
		marca VARCHAR(150),
		modelo VARCHAR(150),
		no_serie VARCHAR(200),
		codigo_registro VARCHAR(150),
		memoria_ram VARCHAR(50),
		disco_duro VARCHAR(100),
		serie_disco_duro VARCHAR(200),
		sistema_operativo VARCHAR(120),
		procesador VARCHAR(150),
		nombre_usuario_equipo VARCHAR(150),
		tipo_equipo VARCHAR(120),
		nombre_equipo VARCHAR(150),
		status VARCHAR(50) DEFAULT 'pendiente',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		agendado BOOLEAN DEFAULT false
	)`,
	`ALTER TABLE equipment_requests ADD COLUMN IF NOT EXISTS equipo_id INTEGER REFERENCES equipos(id) ON DELETE SET NULL`,
	`CREATE TABLE IF NOT EXISTS agenda (
		id SERIAL PRIMARY KEY,
		dia_agendado TIMESTAMPTZ,
		status VARCHAR(80),
		usuario_id INTEGER REFERENCES usuarios_internos(id) ON DELETE SET NULL,
		equipo_id INTEGER REFERENCES equipos(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id SERIAL PRIMARY KEY,
		cliente_id INTEGER REFERENCES usuarios_empresas(id) ON DELETE CASCADE,
		empresa_id INTEGER REFERENCES empresas(id) ON DELETE CASCADE,
		asunto VARCHAR(255) NOT NULL,
		descripcion TEXT NOT NULL,
		prioridad VARCHAR(50) DEFAULT 'media',
		status VARCHAR(50) DEFAULT 'abierto',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ticket_mensajes (
		id SERIAL PRIMARY KEY,
		ticket_id INTEGER REFERENCES tickets(id) ON DELETE CASCADE,
		usuario_id INTEGER NOT NULL,
		rol VARCHAR(50) NOT NULL,
		nombre_usuario VARCHAR(300),
		mensaje TEXT NOT NULL,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS ticket_mensajes_ticket_idx ON ticket_mensajes (ticket_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS pagos (
		id SERIAL PRIMARY KEY,
		empresa_id_pago INTEGER REFERENCES empresas(id) ON DELETE CASCADE,
		usuario_id INTEGER REFERENCES usuarios_empresas(id) ON DELETE SET NULL,
		monto DECIMAL(10,2) NOT NULL,
		moneda VARCHAR(10) DEFAULT 'MXN',
		metodo_pago VARCHAR(50),
		referencia_pago VARCHAR(255),
		estado_pago VARCHAR(50) DEFAULT 'pendiente',
		dias_agregados INTEGER NOT NULL,
		plan VARCHAR(50),
		fecha_pago TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		fecha_expiracion TIMESTAMPTZ,
		datos_pago JSONB
	)`,
	`ALTER TABLE pagos ADD COLUMN IF NOT EXISTS plan VARCHAR(50)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS pagos_referencia_pago_key ON pagos (referencia_pago)`,
	`CREATE INDEX IF NOT EXISTS pagos_empresa_expiracion_idx ON pagos (empresa_id_pago, fecha_expiracion DESC)`,
	`CREATE TABLE IF NOT EXISTS eventos_webhook (
		id SERIAL PRIMARY KEY,
		provider VARCHAR(50) NOT NULL,
		event_id VARCHAR(255) NOT NULL,
		event_type VARCHAR(120),
		payload JSONB,
		processed_at TIMESTAMPTZ,
		processing_error TEXT,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (provider, event_id)
	)`,
	`CREATE TABLE IF NOT EXISTS precios_servicios (
		id SERIAL PRIMARY KEY,
		codigo_servicio VARCHAR(100) UNIQUE NOT NULL,
		nombre_servicio VARCHAR(250) NOT NULL,
		descripcion TEXT,
		precio DECIMAL(10,2) NOT NULL,
		moneda VARCHAR(10) DEFAULT 'MXN',
		activo BOOLEAN DEFAULT true,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`INSERT INTO precios_servicios (codigo_servicio, nombre_servicio, descripcion, precio, moneda, activo)
	VALUES
		('plan_anual', 'Plan Anual', 'Membresía anual completa con acceso a todas las funciones del sistema', 2999.00, 'MXN', true),
		('instalacion_asesor', 'Instalación con Asesor', 'Servicio completo de instalación con asesor técnico, incluye configuración personalizada y soporte inicial', 2500.00, 'MXN', true),
		('instalacion_propia', 'Instalación por mi cuenta', 'Descarga de archivos de instalación, guía paso a paso y soporte por correo electrónico', 500.00, 'MXN', true)
	ON CONFLICT (codigo_servicio) DO UPDATE SET
		nombre_servicio = EXCLUDED.nombre_servicio,
		descripcion = EXCLUDED.descripcion,
		precio = EXCLUDED.precio,
		moneda = EXCLUDED.moneda,
		activo = EXCLUDED.activo,
		updated_at = CURRENT_TIMESTAMP`,
}

// Migrate aplica el esquema. Cada sentencia es idempotente, así que puede ejecutarse en cada arranque.
func Migrate(ctx context.Context, q Querier) error {
	for i, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema paso %d: %w", i+1, err)
		}
	}
	return nil
}
