package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CensusToolFilename nombre del script que descarga el cliente.
const CensusToolFilename = "censo-rdp.sh"

// censusToolScript ejecuta portalctl contra esta API con el token de quien lo descargó.
// Los argumentos extra (--responsiva, --dry-run) pasan tal cual.
const censusToolScript = `#!/bin/sh
# Censo automático de equipo - Portal RDP
# Requiere portalctl en el PATH.
set -e
exec portalctl censo --api %s --token %s "$@"
`

// CensusTool godoc
// @Summary      Descargar script de censo automático
// @Description  Script de shell que recolecta el hardware con portalctl y envía el censo con el token del cliente.
// @Tags         documentos
// @Produce      text/x-sh
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /download/census-tool-auto [get]
func (h *CatalogHandler) CensusTool(c *fiber.Ctx) error {
	token, _ := c.Locals(LocalToken).(string)
	script := fmt.Sprintf(censusToolScript, shellQuote(c.BaseURL()), shellQuote(token))
	c.Set(fiber.HeaderContentType, "text/x-sh; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+CensusToolFilename+`"`)
	return c.SendString(script)
}

// shellQuote entre comillas simples para sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
