package speededit

import (
	"context"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
)

// AuditRecorder registra una mutación ejecutada. Lo implementa *auditlog.Service.
type AuditRecorder interface {
	Record(ctx context.Context, product *entity.Product, action, oldValue, newValue string, actor int64) error
}

// AuditReader consulta el historial. Lo implementa *auditlog.Service.
type AuditReader interface {
	ListRecent(ctx context.Context, productID int64, limit int) ([]*entity.EditLog, error)
	ListAll(ctx context.Context, limit int) ([]*entity.EditLog, error)
}

// LogReportGenerator genera la versión imprimible del historial de un producto.
type LogReportGenerator interface {
	GenerateEditLogPDF(ctx context.Context, product *entity.Product, logs []*entity.EditLog) ([]byte, error)
}
