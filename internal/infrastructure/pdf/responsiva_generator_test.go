package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-rdp/internal/application/usecase"
)

func TestGenerateResponsiva_Prellenada(t *testing.T) {
	g := NewResponsivaGenerator()

	out, err := g.GenerateResponsiva(context.Background(), usecase.ResponsivaData{
		CompanyName: "Acme SA de CV",
		RFC:         "ACM010101AAA",
		Employees:   []string{"Ana", "Luis"},
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateResponsiva_EnBlanco(t *testing.T) {
	out, err := NewResponsivaGenerator().GenerateResponsiva(context.Background(), usecase.ResponsivaData{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
