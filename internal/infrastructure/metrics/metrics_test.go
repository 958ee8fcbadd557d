package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewWithRegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWith(reg)

	m.TransfersCompleted.Inc()
	m.TransferErrors.WithLabelValues("insufficient_funds").Inc()
	m.AccountsCreated.Inc()
	m.CacheHits.Inc()

	if got := testutil.ToFloat64(m.TransfersCompleted); got != 1 {
		t.Errorf("expected 1 completed transfer, got %f", got)
	}

	if got := testutil.ToFloat64(m.TransferErrors.WithLabelValues("insufficient_funds")); got != 1 {
		t.Errorf("expected 1 transfer error, got %f", got)
	}
}

func TestNewWithIsolatedRegistries(t *testing.T) {
	// Two instances on separate registries must not collide.
	a := NewWith(prometheus.NewRegistry())
	b := NewWith(prometheus.NewRegistry())

	a.AccountsCreated.Inc()

	if got := testutil.ToFloat64(b.AccountsCreated); got != 0 {
		t.Errorf("expected isolated counter, got %f", got)
	}
}
