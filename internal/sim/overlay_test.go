package sim

import (
	"math"
	"testing"
)

func TestOverlayPerfectLanding(t *testing.T) {
	d := ComputeOverlay(OverlayInputs{ViaSizeNm: 20, ContactSizeNm: 25})
	if d.OverlapPercent != 100 {
		t.Errorf("overlap = %v, want 100", d.OverlapPercent)
	}
	if d.ContactOhm != nominalContactOhm {
		t.Errorf("resistance = %v, want %v", d.ContactOhm, nominalContactOhm)
	}
	if d.Status != StatusOK {
		t.Errorf("status = %s, want OK", d.Status)
	}
}

func TestOverlayFullSeparationIsOpen(t *testing.T) {
	// Via r=10 plus contact r=12.5: separated at 22.5 nm.
	d := ComputeOverlay(OverlayInputs{OverlayXNm: 22.5, ViaSizeNm: 20, ContactSizeNm: 25})
	if d.OverlapPercent != 0 {
		t.Errorf("overlap = %v, want 0", d.OverlapPercent)
	}
	if d.ContactOhm != maxContactOhm {
		t.Errorf("resistance = %v, want capped at %v", d.ContactOhm, maxContactOhm)
	}
	if d.Status != StatusOpen {
		t.Errorf("status = %s, want OPEN", d.Status)
	}
}

func TestOverlayOpenThreshold(t *testing.T) {
	// Partial zone overlap is (22.5-d)/20*100, crossing 30% at d=16.5.
	tests := []struct {
		x    float64
		want OverlayStatus
	}{
		{15, StatusOK},   // 37.5%
		{16, StatusOK},   // 32.5%
		{17, StatusOpen}, // 27.5%
	}
	for _, tt := range tests {
		d := ComputeOverlay(OverlayInputs{OverlayXNm: tt.x, ViaSizeNm: 20, ContactSizeNm: 25})
		if d.Status != tt.want {
			t.Errorf("x=%v: status %s (overlap %.1f%%), want %s", tt.x, d.Status, d.OverlapPercent, tt.want)
		}
	}
}

func TestSelfAlignmentRescuesLargeShift(t *testing.T) {
	in := OverlayInputs{OverlayXNm: 20, ViaSizeNm: 20, ContactSizeNm: 25}

	d := ComputeOverlay(in)
	if d.Status == StatusOK {
		t.Fatalf("20 nm shift should not land OK without self-alignment (overlap %.1f%%)", d.OverlapPercent)
	}

	in.SelfAligned = true
	d = ComputeOverlay(in)
	if d.EffectiveOverlayNm != 2.0 {
		t.Errorf("effective overlay = %v, want 2.0", d.EffectiveOverlayNm)
	}
	if d.OverlapPercent != 100 || d.Status != StatusOK {
		t.Errorf("self-aligned: overlap %.1f%%, status %s, want 100%% OK", d.OverlapPercent, d.Status)
	}
}

func TestDiagonalShiftCombines(t *testing.T) {
	d := ComputeOverlay(OverlayInputs{OverlayXNm: 12, OverlayYNm: 12, ViaSizeNm: 20, ContactSizeNm: 25})
	want := math.Hypot(12, 12)
	if math.Abs(d.TotalOverlayNm-want) > 1e-9 {
		t.Errorf("total overlay = %v, want %v", d.TotalOverlayNm, want)
	}
	// 16.97 nm combined exceeds the 16.5 nm open threshold even though each
	// axis alone would be fine.
	if d.Status != StatusOpen {
		t.Errorf("status = %s, want OPEN", d.Status)
	}
}

func TestShortRiskIgnoresSelfAlignmentButStatusDoesNot(t *testing.T) {
	// Big features keep the landing connected while the raw shift crosses
	// adjacent spacing.
	in := OverlayInputs{OverlayXNm: 35, ViaSizeNm: 100, ContactSizeNm: 100}

	d := ComputeOverlay(in)
	if !d.ShortRisk {
		t.Fatal("35 nm shift should flag short risk")
	}
	if d.Status != StatusShort {
		t.Errorf("status = %s, want SHORT", d.Status)
	}

	in.SelfAligned = true
	d = ComputeOverlay(in)
	if !d.ShortRisk {
		t.Error("short risk flag should track raw overlay even when self-aligned")
	}
	if d.Status == StatusShort {
		t.Error("self-aligned landing should not classify as SHORT")
	}
}

func TestOverlayBudget(t *testing.T) {
	in := OverlayInputs{OverlayXNm: 15, ViaSizeNm: 20, ContactSizeNm: 25}
	d := ComputeOverlay(in)
	if d.OverlayBudgetNm != 17.5 {
		t.Errorf("budget = %v, want 17.5", d.OverlayBudgetNm)
	}
	if !d.WithinBudget {
		t.Error("15 nm should be within a 17.5 nm budget")
	}

	in.OverlayXNm = 18
	if d := ComputeOverlay(in); d.WithinBudget {
		t.Error("18 nm should exceed a 17.5 nm budget")
	}
}

func TestCircleOverlapPercent(t *testing.T) {
	tests := []struct {
		r1, r2, d float64
		want      float64
	}{
		{10, 12.5, 0, 100},    // concentric, smaller contained
		{10, 12.5, 2.5, 100},  // d+minR == maxR, still contained
		{10, 12.5, 22.5, 0},   // exactly touching counts as separated
		{10, 12.5, 30, 0},     // fully apart
		{10, 12.5, 12.5, 50},  // midway through the partial zone
		{0, 12.5, 0, 0},       // degenerate radius
	}
	for _, tt := range tests {
		if got := circleOverlapPercent(tt.r1, tt.r2, tt.d); got != tt.want {
			t.Errorf("circleOverlapPercent(%v, %v, %v) = %v, want %v", tt.r1, tt.r2, tt.d, got, tt.want)
		}
	}
}

func TestOverlayTotalOverInputGrid(t *testing.T) {
	for x := -20.0; x <= 20; x += 5 {
		for y := -20.0; y <= 20; y += 5 {
			for _, via := range []float64{10, 20, 40} {
				for _, contact := range []float64{10, 25, 40} {
					for _, sa := range []bool{false, true} {
						d := ComputeOverlay(OverlayInputs{
							OverlayXNm: x, OverlayYNm: y,
							ViaSizeNm: via, ContactSizeNm: contact,
							SelfAligned: sa,
						})
						if math.IsNaN(d.ContactOhm) || math.IsInf(d.ContactOhm, 0) {
							t.Fatalf("non-finite resistance at x=%v y=%v via=%v contact=%v", x, y, via, contact)
						}
						if d.OverlapPercent < 0 || d.OverlapPercent > 100 {
							t.Fatalf("overlap out of range at x=%v y=%v: %v", x, y, d.OverlapPercent)
						}
					}
				}
			}
		}
	}
}

func TestOverlaySnapshotRoundTrip(t *testing.T) {
	o := NewOverlay()
	o.Inputs.OverlayXNm = -12
	o.Inputs.SelfAligned = true

	fresh := NewOverlay()
	fresh.Restore(o.Snapshot())
	if fresh.Inputs != o.Inputs {
		t.Errorf("round trip mismatch: %+v vs %+v", fresh.Inputs, o.Inputs)
	}

	fresh.Restore(map[string]float64{"overlay_x": 500, "via_size": 0})
	if fresh.Inputs.OverlayXNm != 20 || fresh.Inputs.ViaSizeNm != 10 {
		t.Errorf("restore did not clamp: %+v", fresh.Inputs)
	}
}
