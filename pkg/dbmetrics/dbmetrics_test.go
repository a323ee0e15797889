package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

type stubExecutor struct {
	DBExecutor
	name string
}

type stubTx struct {
	stubExecutor
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := stubExecutor{name: "db"}
	tx := stubTx{stubExecutor{name: "tx"}}

	assert.Equal(t, db, GetExecutor(context.Background(), db))

	ctx := WithTx(context.Background(), tx)
	assert.Equal(t, tx, GetExecutor(ctx, db))
}

func TestObserveAndStats(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	d := Wrap(nil, m)

	d.observe("query", time.Now(), errors.New("connection reset"))
	d.observe("query_row", time.Now(), sql.ErrNoRows)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("query")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("query_row")))

	d.recordStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3})
	assert.Equal(t, 4.0, testutil.ToFloat64(m.DBOpenConnections))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBIdleConnections))
}
