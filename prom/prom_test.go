package prom

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/smlrepo/iocounter"
)

func TestNewCounterFunc(t *testing.T) {
	var buf bytes.Buffer
	w := iocounter.NewWriter(&buf)
	metric := NewCounterFunc(prometheus.CounterOpts{
		Name: "bytes_written_total",
		Help: "Total bytes written through the wrapper.",
	}, w)

	if got := testutil.ToFloat64(metric); got != 0 {
		t.Fatalf("metric before any write is %v, want 0", got)
	}

	if _, err := w.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got := testutil.ToFloat64(metric); got != 3 {
		t.Errorf("metric after write is %v, want 3", got)
	}
}
