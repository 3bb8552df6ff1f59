package report

import "github.com/WallaceSt/bzutils/internal/domain/entity"

// PriceListPDFGenerator es el puerto de generación del PDF de la lista de
// precios de un período. La implementación vive en infrastructure/pdf.
type PriceListPDFGenerator interface {
	GeneratePriceListPDF(period *entity.Period, owner string, items []entity.PriceListItem) ([]byte, error)
}
