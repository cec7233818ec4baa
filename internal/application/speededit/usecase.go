package speededit

import (
	"context"
	"errors"

	"github.com/jhoicas/speed-edit-api/internal/application/dto"
	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
)

// ErrReportDisabled se devuelve al exportar PDF sin generador configurado.
var ErrReportDisabled = errors.New("speededit: generador de reportes no configurado")

// UseCase fachada del editor rápido para la capa HTTP: lote, detalle, formulario e historial.
type UseCase struct {
	engine   *Engine
	catalog  repository.CatalogRepository
	audit    AuditReader
	report   LogReportGenerator
	logLimit int
}

// NewUseCase construye la fachada. report puede ser nil si no se exporta PDF.
func NewUseCase(engine *Engine, catalog repository.CatalogRepository, audit AuditReader, report LogReportGenerator, logLimit int) *UseCase {
	if logLimit <= 0 {
		logLimit = 50
	}
	return &UseCase{engine: engine, catalog: catalog, audit: audit, report: report, logLimit: logLimit}
}

// UpdateStockFromRequest aplica el lote recibido y devuelve las cantidades más el historial reciente.
// Si el lote se corta por un error, lo ya aplicado no se revierte.
func (uc *UseCase) UpdateStockFromRequest(ctx context.Context, userID int64, in dto.BatchStockUpdateRequest) (*dto.BatchStockUpdateResponse, error) {
	results, err := uc.engine.ApplyBatch(ctx, InstructionsFromRequest(in), userID)
	if err != nil {
		return nil, err
	}
	logs, err := uc.audit.ListAll(ctx, uc.logLimit)
	if err != nil {
		return nil, err
	}
	out := &dto.BatchStockUpdateResponse{
		Products: make([]dto.StockResultDTO, 0, len(results)),
		Logs:     toEditLogDTOs(logs),
	}
	for _, r := range results {
		out.Products = append(out.Products, dto.StockResultDTO{ProductID: r.ProductID, Quantity: r.Quantity})
	}
	return out, nil
}

// SaveProductForm guarda el formulario de edición de un producto (campos con nombre).
func (uc *UseCase) SaveProductForm(ctx context.Context, userID, productID int64, fields map[string]string) error {
	return uc.engine.ApplyProductForm(ctx, productID, ParseProductForm(fields), userID)
}

// GetProductDetail devuelve el resumen del producto, sus variaciones y su historial. Solo lectura.
func (uc *UseCase) GetProductDetail(ctx context.Context, productID int64) (*dto.ProductDetailResponse, error) {
	product, err := uc.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	out := &dto.ProductDetailResponse{
		Product:    toProductSummaryDTO(product),
		Variations: []dto.ProductSummaryDTO{},
	}
	if product.Type == entity.ProductTypeVariable {
		children, err := uc.catalog.GetChildren(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range children {
			v, err := uc.catalog.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if v == nil {
				continue
			}
			out.Variations = append(out.Variations, toProductSummaryDTO(v))
		}
	}
	logs, err := uc.audit.ListRecent(ctx, product.TopLevelID(), uc.logLimit)
	if err != nil {
		return nil, err
	}
	out.Logs = toEditLogDTOs(logs)
	return out, nil
}

// ListLog devuelve las últimas filas del historial; productID 0 = todos los productos.
func (uc *UseCase) ListLog(ctx context.Context, productID int64, limit int) (*dto.EditLogListResponse, error) {
	if limit <= 0 {
		limit = uc.logLimit
	}
	var (
		logs []*entity.EditLog
		err  error
	)
	if productID > 0 {
		logs, err = uc.audit.ListRecent(ctx, productID, limit)
	} else {
		logs, err = uc.audit.ListAll(ctx, limit)
	}
	if err != nil {
		return nil, err
	}
	items := toEditLogDTOs(logs)
	return &dto.EditLogListResponse{Items: items, Total: len(items)}, nil
}

// ExportLogPDF genera el reporte imprimible del historial de un producto.
func (uc *UseCase) ExportLogPDF(ctx context.Context, productID int64) ([]byte, error) {
	if uc.report == nil {
		return nil, ErrReportDisabled
	}
	product, err := uc.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	logs, err := uc.audit.ListRecent(ctx, product.TopLevelID(), 500)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateEditLogPDF(ctx, product, logs)
}

func toProductSummaryDTO(p *entity.Product) dto.ProductSummaryDTO {
	return dto.ProductSummaryDTO{
		ID:            p.ID,
		ParentID:      p.ParentID,
		Type:          p.Type,
		SKU:           p.SKU,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Location:      p.Location,
	}
}

func toEditLogDTOs(logs []*entity.EditLog) []dto.EditLogDTO {
	out := make([]dto.EditLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.EditLogDTO{
			ID:          l.ID,
			ProductID:   l.ProductID,
			VariationID: l.VariationID,
			Action:      l.Action,
			OldValue:    l.OldValue,
			NewValue:    l.NewValue,
			UserID:      l.UserID,
			LogTime:     l.LogTime,
		})
	}
	return out
}
