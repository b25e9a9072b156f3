package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/portal-rdp/internal/domain/access"
)

func TestCan_TablaDeCapacidades(t *testing.T) {
	assert.True(t, access.Can("rh", access.ManageInternalUsers))
	assert.False(t, access.Can("admin", access.ManageInternalUsers), "solo RH gestiona usuarios internos")
	assert.True(t, access.Can("cliente", access.SubmitCensus))
	assert.False(t, access.Can("admin", access.SubmitCensus))
	assert.True(t, access.Can("admin", access.ReviewCensus))
	assert.False(t, access.Can("cliente", access.ReviewCensus))
	assert.False(t, access.Can("user", access.ManageEmployees))
}

func TestCan_RolDesconocido(t *testing.T) {
	assert.False(t, access.Can("", access.ViewCatalog))
	assert.False(t, access.Can("superadmin", access.ManageCompanies))
}

func TestNormalize_AliasHR(t *testing.T) {
	assert.Equal(t, "rh", access.Normalize("hr"))
	assert.True(t, access.Can("hr", access.ManageInternalUsers))
}

func TestIsStaff(t *testing.T) {
	assert.True(t, access.IsStaff("admin"))
	assert.True(t, access.IsStaff("hr"))
	assert.False(t, access.IsStaff("cliente"))
}
