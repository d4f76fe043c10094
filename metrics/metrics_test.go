package metrics

import (
	"path/filepath"
	"testing"

	"github.com/meikuraledutech/decision"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_CountsOutcomes(t *testing.T) {
	valid := testutil.ToFloat64(ValidationsTotal.WithLabelValues("valid"))
	invalid := testutil.ToFloat64(ValidationsTotal.WithLabelValues("invalid"))
	loadErr := testutil.ToFloat64(ValidationsTotal.WithLabelValues("load_error"))
	warnings := testutil.ToFloat64(DiagnosticsTotal.WithLabelValues("warning"))

	v := decision.New(decision.WithRecorder(Recorder{}))
	v.ValidateFile(filepath.Join("..", "testdata", "minimal.json"))
	v.ValidateFile(filepath.Join("..", "testdata", "broken.json"))
	v.ValidateBytes("inline", []byte(`not json`))

	if got := testutil.ToFloat64(ValidationsTotal.WithLabelValues("valid")) - valid; got != 1 {
		t.Errorf("valid: expected 1, got %v", got)
	}
	if got := testutil.ToFloat64(ValidationsTotal.WithLabelValues("invalid")) - invalid; got != 1 {
		t.Errorf("invalid: expected 1, got %v", got)
	}
	if got := testutil.ToFloat64(ValidationsTotal.WithLabelValues("load_error")) - loadErr; got != 1 {
		t.Errorf("load_error: expected 1, got %v", got)
	}
	if got := testutil.ToFloat64(DiagnosticsTotal.WithLabelValues("warning")) - warnings; got != 1 {
		t.Errorf("warnings: expected 1, got %v", got)
	}
}
