package usecase

import (
	"context"
	"path"
	"time"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/domain/repository"
)

// ResponsivaData datos con los que se prellena la plantilla de responsiva.
type ResponsivaData struct {
	CompanyName string
	RFC         string
	Employees   []string
	Date        time.Time
}

// ResponsivaPDFGenerator genera la plantilla de carta responsiva en PDF.
type ResponsivaPDFGenerator interface {
	GenerateResponsiva(ctx context.Context, data ResponsivaData) ([]byte, error)
}

// ResponsivaReader lee una responsiva guardada a partir de la ruta persistida.
type ResponsivaReader interface {
	Open(path string) ([]byte, error)
}

// CatalogUseCase consultas de solo lectura: precios de servicios, planes y documentos.
type CatalogUseCase struct {
	priceRepo    repository.ServicePriceRepository
	documentRepo repository.DocumentRepository
	companyRepo  repository.CompanyRepository
	employeeRepo repository.EmployeeRepository
	pdf          ResponsivaPDFGenerator
	files        ResponsivaReader
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	priceRepo repository.ServicePriceRepository,
	documentRepo repository.DocumentRepository,
	companyRepo repository.CompanyRepository,
	employeeRepo repository.EmployeeRepository,
	pdf ResponsivaPDFGenerator,
	files ResponsivaReader,
) *CatalogUseCase {
	return &CatalogUseCase{
		priceRepo:    priceRepo,
		documentRepo: documentRepo,
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		pdf:          pdf,
		files:        files,
	}
}

// ServicePrices precios activos.
func (uc *CatalogUseCase) ServicePrices(ctx context.Context) (*dto.ServicePriceListResponse, error) {
	list, err := uc.priceRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServicePriceResponse, 0, len(list))
	for _, sp := range list {
		items = append(items, dto.ServicePriceResponse{
			ID:          sp.ID,
			Codigo:      sp.Code,
			Nombre:      sp.Name,
			Descripcion: sp.Description,
			Precio:      sp.Price,
			Moneda:      sp.Currency,
		})
	}
	return &dto.ServicePriceListResponse{Precios: items}, nil
}

// Plans catálogo estático de planes de membresía.
func (uc *CatalogUseCase) Plans() *dto.PlanListResponse {
	plans := entity.Plans()
	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, dto.PlanResponse{
			Codigo:      p.Code,
			Nombre:      p.Name,
			Dias:        p.Days,
			Precio:      p.Price,
			Moneda:      p.Currency,
			Descripcion: p.Description,
		})
	}
	return &dto.PlanListResponse{Planes: items}
}

// Documents paquete de documentos de la empresa del cliente.
func (uc *CatalogUseCase) Documents(ctx context.Context, p dto.Principal) (*dto.DocumentResponse, error) {
	companyID, ok := p.CompanyID()
	if !ok {
		return nil, domain.ErrForbidden
	}
	doc, err := uc.documentRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DocumentResponse{
		ID:                doc.ID,
		EmpresaID:         doc.CompanyID,
		CSF:               doc.CSF,
		CD:                doc.CD,
		RT:                doc.RT,
		COT:               doc.COT,
		ArchivoResponsiva: doc.ResponsivaPath,
	}, nil
}

// ResponsivaTemplate plantilla de responsiva. Para un cliente se prellena con su empresa y empleados;
// el personal interno recibe la plantilla en blanco.
func (uc *CatalogUseCase) ResponsivaTemplate(ctx context.Context, p dto.Principal) ([]byte, error) {
	data := ResponsivaData{Date: time.Now()}
	if companyID, ok := p.CompanyID(); ok && p.IsClient() {
		company, err := uc.companyRepo.GetByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			data.CompanyName = company.Name
			data.RFC = company.RFC
		}
		employees, err := uc.employeeRepo.ListByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}
		for _, e := range employees {
			data.Employees = append(data.Employees, e.Name)
		}
	}
	return uc.pdf.GenerateResponsiva(ctx, data)
}

// StoredResponsiva responsiva firmada que subió la empresa. El cliente solo accede a la suya.
// Devuelve el nombre del archivo y su contenido.
func (uc *CatalogUseCase) StoredResponsiva(ctx context.Context, p dto.Principal, companyID int64) (string, []byte, error) {
	if !ownedBy(p, companyID) {
		return "", nil, domain.ErrNotFound
	}
	doc, err := uc.documentRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return "", nil, err
	}
	if doc == nil || doc.ResponsivaPath == "" {
		return "", nil, domain.ErrNotFound
	}
	data, err := uc.files.Open(doc.ResponsivaPath)
	if err != nil {
		return "", nil, err
	}
	return path.Base(doc.ResponsivaPath), data, nil
}
