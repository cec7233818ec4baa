package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
)

var _ repository.EditLogRepository = (*EditLogRepo)(nil)

const editLogColumns = `id, product_id, variation_id, action, old_value, new_value, user_id, log_time`

// EditLogRepo adaptador del historial speed_edit_log. Solo INSERT y SELECT.
type EditLogRepo struct {
	q Querier
}

// NewEditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEditLogRepository(q Querier) *EditLogRepo {
	return &EditLogRepo{q: q}
}

// Create inserta una fila y asigna su ID.
func (r *EditLogRepo) Create(ctx context.Context, log *entity.EditLog) error {
	query := `
		INSERT INTO speed_edit_log (product_id, variation_id, action, old_value, new_value, user_id, log_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		log.ProductID, log.VariationID, log.Action, log.OldValue, log.NewValue, log.UserID, log.LogTime,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("insert edit log: %w", err)
	}
	return nil
}

// ListByProduct historial de un producto de primer nivel (incluye sus variaciones), más reciente primero.
func (r *EditLogRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.EditLog, error) {
	query := `SELECT ` + editLogColumns + `
		FROM speed_edit_log
		WHERE product_id = $1
		ORDER BY log_time DESC, id DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list edit log by product: %w", err)
	}
	return collectEditLogs(rows)
}

// ListRecent últimas filas de todo el historial.
func (r *EditLogRepo) ListRecent(ctx context.Context, limit int) ([]*entity.EditLog, error) {
	query := `SELECT ` + editLogColumns + `
		FROM speed_edit_log
		ORDER BY log_time DESC, id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent edit log: %w", err)
	}
	return collectEditLogs(rows)
}

func collectEditLogs(rows pgx.Rows) ([]*entity.EditLog, error) {
	defer rows.Close()
	var list []*entity.EditLog
	for rows.Next() {
		var l entity.EditLog
		if err := rows.Scan(
			&l.ID, &l.ProductID, &l.VariationID, &l.Action, &l.OldValue, &l.NewValue, &l.UserID, &l.LogTime,
		); err != nil {
			return nil, fmt.Errorf("scan edit log: %w", err)
		}
		list = append(list, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edit log: %w", err)
	}
	return list, nil
}
