package usecase

import (
	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
)

// companyScope resuelve la empresa sobre la que opera el principal: el cliente siempre
// queda limitado a la suya; el personal interno debe indicarla.
func companyScope(p dto.Principal, requested *int64) (int64, error) {
	if p.IsClient() {
		id, ok := p.CompanyID()
		if !ok {
			return 0, domain.ErrForbidden
		}
		return id, nil
	}
	if requested == nil || *requested <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return *requested, nil
}

// ownedBy informa si un recurso de la empresa companyID es visible para el principal.
func ownedBy(p dto.Principal, companyID int64) bool {
	if !p.IsClient() {
		return true
	}
	id, ok := p.CompanyID()
	return ok && id == companyID
}
