package auditlog_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/speed-edit-api/internal/application/auditlog"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/testutil"
)

func TestRecord_ProductoSimple(t *testing.T) {
	repo := testutil.NewEditLogs()
	local := time.Date(2026, 5, 4, 10, 30, 0, 0, time.FixedZone("COT", -5*3600))
	svc := auditlog.NewService(repo, func() time.Time { return local })

	err := svc.Record(context.Background(), &entity.Product{ID: 5}, "add_stock", "1", "2", 9)
	require.NoError(t, err)

	rows := repo.All()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].ProductID)
	assert.Equal(t, int64(0), rows[0].VariationID)
	assert.Equal(t, int64(9), rows[0].UserID)
	assert.Equal(t, local.UTC(), rows[0].LogTime, "la hora se guarda en UTC")
}

func TestRecord_VariacionUsaPadre(t *testing.T) {
	repo := testutil.NewEditLogs()
	svc := auditlog.NewService(repo, nil)

	require.NoError(t, svc.Record(context.Background(), &entity.Product{ID: 6, ParentID: 5}, "location", "", "A-1", 9))

	rows := repo.All()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].ProductID)
	assert.Equal(t, int64(6), rows[0].VariationID)
	assert.False(t, rows[0].LogTime.IsZero())
}

func TestRecord_AccionVaciaNoRegistra(t *testing.T) {
	repo := testutil.NewEditLogs()
	svc := auditlog.NewService(repo, nil)

	require.NoError(t, svc.Record(context.Background(), &entity.Product{ID: 5}, "", "1", "2", 9))
	assert.Empty(t, repo.All())
}

func TestRecord_RecortaValoresLargos(t *testing.T) {
	repo := testutil.NewEditLogs()
	svc := auditlog.NewService(repo, nil)

	long := strings.Repeat("ñ", 300)
	require.NoError(t, svc.Record(context.Background(), &entity.Product{ID: 5}, "location", long, "B", 9))

	assert.Equal(t, entity.EditLogValueMaxLen, len([]rune(repo.All()[0].OldValue)))
}

func TestRecord_PropagaErrorDelRepositorio(t *testing.T) {
	repo := testutil.NewEditLogs()
	repo.FailErr = errors.New("insert falló")
	svc := auditlog.NewService(repo, nil)

	err := svc.Record(context.Background(), &entity.Product{ID: 5}, "add_stock", "1", "2", 9)
	assert.ErrorIs(t, err, repo.FailErr)
}

func TestListRecent_OrdenDescendente(t *testing.T) {
	repo := testutil.NewEditLogs()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := base
	svc := auditlog.NewService(repo, func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	})
	ctx := context.Background()
	require.NoError(t, svc.Record(ctx, &entity.Product{ID: 1}, "add_stock", "0", "1", 1))
	require.NoError(t, svc.Record(ctx, &entity.Product{ID: 2}, "add_stock", "0", "1", 1))
	require.NoError(t, svc.Record(ctx, &entity.Product{ID: 3, ParentID: 1}, "add_stock", "1", "2", 1))

	mine, err := svc.ListRecent(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(3), mine[0].VariationID)
	assert.Equal(t, int64(0), mine[1].VariationID)

	all, err := svc.ListAll(ctx, 2)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].LogTime.After(all[1].LogTime))
}
