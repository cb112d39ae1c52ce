package sim

import "testing"

func TestThroughputPrecisionOrdering(t *testing.T) {
	fp32 := TensorThroughput(4, PrecisionFP32)
	fp16 := TensorThroughput(4, PrecisionFP16)
	int8 := TensorThroughput(4, PrecisionINT8)

	if fp16 != 2*fp32 {
		t.Errorf("FP16 throughput %v, want 2x FP32 %v", fp16, fp32)
	}
	if int8 != 4*fp32 {
		t.Errorf("INT8 throughput %v, want 4x FP32 %v", int8, fp32)
	}
}

func TestThroughputValues(t *testing.T) {
	tests := []struct {
		size int
		p    Precision
		want float64
	}{
		{2, PrecisionFP32, 128},   // 2*8 ops, x8 boost
		{4, PrecisionFP32, 1024},  // 2*64 ops, x8 boost
		{4, PrecisionINT8, 4096},
	}
	for _, tt := range tests {
		if got := TensorThroughput(tt.size, tt.p); got != tt.want {
			t.Errorf("TensorThroughput(%d, %s) = %v, want %v", tt.size, tt.p, got, tt.want)
		}
	}
}

func TestThroughputClampsMatrixSize(t *testing.T) {
	if got, want := TensorThroughput(0, PrecisionFP32), TensorThroughput(2, PrecisionFP32); got != want {
		t.Errorf("undersize matrix: %v, want %v", got, want)
	}
	if got, want := TensorThroughput(99, PrecisionFP32), TensorThroughput(4, PrecisionFP32); got != want {
		t.Errorf("oversize matrix: %v, want %v", got, want)
	}
}

func TestProgressMonotonicAndHalts(t *testing.T) {
	tc := NewTensorCore()
	tc.Precision = PrecisionINT8
	tc.StartCompute()
	if !tc.Running() {
		t.Fatal("not running after StartCompute")
	}

	prev := tc.Progress()
	for i := 0; i < 100; i++ {
		tc.Step()
		if tc.Progress() < prev {
			t.Fatalf("progress regressed: %v -> %v", prev, tc.Progress())
		}
		prev = tc.Progress()
	}
	if tc.Progress() != 100 {
		t.Errorf("progress = %v, want 100", tc.Progress())
	}
	if tc.Running() {
		t.Error("still running at 100%")
	}

	// Further steps are no-ops once halted.
	tc.Step()
	if tc.Progress() != 100 {
		t.Errorf("progress moved past 100: %v", tc.Progress())
	}
}

func TestLowerPrecisionFinishesSooner(t *testing.T) {
	ticksToDone := func(p Precision) int {
		tc := NewTensorCore()
		tc.Precision = p
		tc.StartCompute()
		n := 0
		for tc.Running() && n < 1000 {
			tc.Step()
			n++
		}
		return n
	}

	fp32 := ticksToDone(PrecisionFP32)
	int8 := ticksToDone(PrecisionINT8)
	if int8 >= fp32 {
		t.Errorf("INT8 took %d ticks, FP32 took %d; INT8 should finish sooner", int8, fp32)
	}
}

func TestRestartResetsProgress(t *testing.T) {
	tc := NewTensorCore()
	tc.StartCompute()
	for i := 0; i < 10; i++ {
		tc.Step()
	}
	tc.StartCompute()
	if tc.Progress() != 0 {
		t.Errorf("progress after restart = %v, want 0", tc.Progress())
	}
}

func TestTensorCoreSnapshotRoundTrip(t *testing.T) {
	tc := NewTensorCore()
	tc.MatrixSize = 3
	tc.Precision = PrecisionFP16

	fresh := NewTensorCore()
	fresh.Restore(tc.Snapshot())
	if fresh.MatrixSize != 3 || fresh.Precision != PrecisionFP16 {
		t.Errorf("round trip: size=%d precision=%s", fresh.MatrixSize, fresh.Precision)
	}

	fresh.Restore(map[string]float64{"matrix_size": 42, "precision": 99})
	if fresh.MatrixSize != 4 {
		t.Errorf("matrix size did not clamp: %d", fresh.MatrixSize)
	}
	if fresh.Precision != PrecisionFP16 {
		t.Errorf("invalid precision index should be ignored, got %s", fresh.Precision)
	}
}
