package repository

import (
	"context"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

// EditLogRepository define el puerto de persistencia del historial (solo inserción y lectura).
type EditLogRepository interface {
	Create(ctx context.Context, log *entity.EditLog) error
	ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.EditLog, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.EditLog, error)
}
