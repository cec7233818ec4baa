package auditlog

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
)

const defaultListLimit = 50

// Service registra y consulta el historial de ediciones rápidas.
// Cada Record es un INSERT independiente: no hay transacción que abarque varias instrucciones.
type Service struct {
	repo  repository.EditLogRepository
	clock func() time.Time
}

// NewService construye el servicio. clock nil = time.Now.
func NewService(repo repository.EditLogRepository, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:  repo,
		clock: func() time.Time { return clock().UTC() },
	}
}

// Record agrega una fila al historial. No hace nada si action está vacío.
// ProductID/VariationID se derivan del padre del producto editado.
func (s *Service) Record(ctx context.Context, product *entity.Product, action, oldValue, newValue string, actor int64) error {
	if action == "" || product == nil {
		return nil
	}
	entry := &entity.EditLog{
		ProductID:   product.ID,
		VariationID: 0,
		Action:      truncate(action, entity.EditLogActionMaxLen),
		OldValue:    truncate(oldValue, entity.EditLogValueMaxLen),
		NewValue:    truncate(newValue, entity.EditLogValueMaxLen),
		UserID:      actor,
		LogTime:     s.clock(),
	}
	if product.IsVariation() {
		entry.ProductID = product.ParentID
		entry.VariationID = product.ID
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("record edit log: %w", err)
	}
	return nil
}

// ListRecent devuelve el historial de un producto (y sus variaciones), más reciente primero.
func (s *Service) ListRecent(ctx context.Context, productID int64, limit int) ([]*entity.EditLog, error) {
	return s.repo.ListByProduct(ctx, productID, normalizeLimit(limit))
}

// ListAll devuelve las últimas filas de todo el historial.
func (s *Service) ListAll(ctx context.Context, limit int) ([]*entity.EditLog, error) {
	return s.repo.ListRecent(ctx, normalizeLimit(limit))
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > 500 {
		return 500
	}
	return limit
}

// truncate recorta a max runas para respetar el largo de las columnas VARCHAR.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}
