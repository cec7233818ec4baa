package speededit

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
	"github.com/jhoicas/speed-edit-api/internal/domain/stock"
	"github.com/jhoicas/speed-edit-api/pkg/logger"
)

// EditInstruction instrucción validada de un lote.
// Value es el delta o la cantidad absoluta; Location solo aplica a la acción location;
// OpenOrders solo aplica a replace_stock.
type EditInstruction struct {
	ProductID  int64
	Action     entity.StockAction
	Value      int
	Location   string
	OpenOrders int
}

// StockResult cantidad resultante de un producto del lote.
type StockResult struct {
	ProductID int64
	Quantity  int
}

// Engine aplica ediciones de stock y ubicación contra el catálogo y deja constancia en el historial.
// Procesa en serie, sin bloqueos ni transacciones: cada escritura es independiente.
type Engine struct {
	catalog repository.CatalogRepository
	audit   AuditRecorder
	log     *logger.Logger
}

// NewEngine construye el motor de edición.
func NewEngine(catalog repository.CatalogRepository, audit AuditRecorder, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{catalog: catalog, audit: audit, log: log}
}

// ApplyBatch aplica cada instrucción del lote en orden.
// Un producto que no existe o una acción desconocida se omiten en silencio (sin historial, fuera del resultado).
// Un error de infraestructura corta el lote; lo ya aplicado queda aplicado.
func (e *Engine) ApplyBatch(ctx context.Context, edits []EditInstruction, actor int64) ([]StockResult, error) {
	results := make([]StockResult, 0, len(edits))
	if len(edits) == 0 {
		return results, nil
	}

	batchID := uuid.NewString()
	skipped := 0
	for _, in := range edits {
		res, applied, err := e.apply(ctx, in, actor)
		if err != nil {
			e.log.Error().Err(err).
				Str("batch_id", batchID).
				Int64("product_id", in.ProductID).
				Int("applied", len(results)).
				Msg("lote de stock interrumpido")
			return results, err
		}
		if !applied {
			skipped++
			e.log.Debug().
				Str("batch_id", batchID).
				Int64("product_id", in.ProductID).
				Str("action", in.Action.String()).
				Msg("instrucción omitida")
			continue
		}
		results = append(results, res)
	}

	e.log.Info().
		Str("batch_id", batchID).
		Int64("user_id", actor).
		Int("applied", len(results)).
		Int("skipped", skipped).
		Msg("lote de stock aplicado")
	return results, nil
}

func (e *Engine) apply(ctx context.Context, in EditInstruction, actor int64) (StockResult, bool, error) {
	if !in.Action.IsQuantity() && in.Action != entity.StockActionLocation {
		return StockResult{}, false, nil
	}
	product, err := e.catalog.GetByID(ctx, in.ProductID)
	if err != nil {
		return StockResult{}, false, fmt.Errorf("resolve product %d: %w", in.ProductID, err)
	}
	if product == nil {
		return StockResult{}, false, nil
	}

	if in.Action == entity.StockActionLocation {
		if err := e.applyLocation(ctx, product, in.Location, actor); err != nil {
			if skippable(err) {
				return StockResult{}, false, nil
			}
			return StockResult{}, false, err
		}
		// La ubicación nunca cambia la cantidad.
		return StockResult{ProductID: product.ID, Quantity: product.StockQuantity}, true, nil
	}

	qty, err := e.applyQuantity(ctx, product, in.Action, in.Value, in.OpenOrders, actor)
	if err != nil {
		if skippable(err) {
			return StockResult{}, false, nil
		}
		return StockResult{}, false, err
	}
	return StockResult{ProductID: product.ID, Quantity: qty}, true, nil
}

// skippable indica un error que omite la instrucción como si el producto no se resolviera:
// el producto desapareció antes de escribir, o la cantidad no cabe en el catálogo.
func skippable(err error) bool {
	return errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrQuantityOutOfRange)
}

func (e *Engine) applyLocation(ctx context.Context, product *entity.Product, location string, actor int64) error {
	old, err := e.catalog.GetLocation(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("get location %d: %w", product.ID, err)
	}
	if err := e.catalog.SetLocation(ctx, product.ID, location); err != nil {
		return fmt.Errorf("set location %d: %w", product.ID, err)
	}
	product.Location = location
	return e.audit.Record(ctx, product, entity.StockActionLocation.String(), old, location, actor)
}

// applyQuantity calcula, persiste y registra una acción de cantidad. Devuelve la cantidad guardada.
func (e *Engine) applyQuantity(ctx context.Context, product *entity.Product, action entity.StockAction, value, openOrders int, actor int64) (int, error) {
	old := product.StockQuantity
	qty, err := stock.NewQuantity(action, old, value, openOrders)
	if err != nil {
		return 0, err
	}
	stored, err := e.catalog.UpdateStock(ctx, product, qty)
	if err != nil {
		return 0, fmt.Errorf("update stock %d: %w", product.ID, err)
	}
	product.StockQuantity = stored
	if err := e.audit.Record(ctx, product, action.String(), strconv.Itoa(old), strconv.Itoa(stored), actor); err != nil {
		return 0, err
	}
	return stored, nil
}
