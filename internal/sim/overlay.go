package sim

import (
	"fmt"
	"math"
)

// OverlayStatus classifies a via/contact landing.
type OverlayStatus int

const (
	StatusOK OverlayStatus = iota
	StatusOpen
	StatusShort
)

func (s OverlayStatus) String() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusShort:
		return "SHORT"
	default:
		return "OK"
	}
}

const (
	// selfAlignedResidual models a self-aligned process cancelling 90% of
	// overlay error.
	selfAlignedResidual = 0.1

	// openBelowPercent is the overlap below which the via fails open.
	openBelowPercent = 30.0

	adjacentSpacingNm = 30.0
	nominalContactOhm = 100.0

	// maxContactOhm caps the resistance divide as overlap approaches
	// zero. Finite sentinel, never Inf.
	maxContactOhm = 10000.0

	overlayBudgetMargin = 5.0
)

// OverlayInputs are the slider and toggle values for the lithography demo.
type OverlayInputs struct {
	OverlayXNm    float64 // -20..20
	OverlayYNm    float64 // -20..20
	ViaSizeNm     float64 // 10..40
	ContactSizeNm float64 // 10..40
	SelfAligned   bool
}

// OverlayDerived are the computed quantities and classification.
type OverlayDerived struct {
	TotalOverlayNm     float64
	EffectiveOverlayNm float64
	OverlapPercent     float64
	ContactOhm         float64
	OverlayBudgetNm    float64
	WithinBudget       bool
	// ShortRisk flags raw overlay past adjacent spacing regardless of
	// self-alignment; Status treats self-alignment as eliminating the
	// short entirely. The asymmetry is deliberate.
	ShortRisk bool
	Status    OverlayStatus
}

// ComputeOverlay classifies a via landing from overlay shift and feature
// sizes. Pure and total: the resistance divide is clamped, never Inf/NaN.
func ComputeOverlay(in OverlayInputs) OverlayDerived {
	total := math.Hypot(in.OverlayXNm, in.OverlayYNm)

	effective := total
	if in.SelfAligned {
		effective = total * selfAlignedResidual
	}

	viaR := in.ViaSizeNm / 2
	contactR := in.ContactSizeNm / 2
	overlap := circleOverlapPercent(viaR, contactR, effective)

	resistance := maxContactOhm
	if overlap > 0 {
		resistance = math.Min(nominalContactOhm/(overlap/100), maxContactOhm)
	}

	shortRisk := total > adjacentSpacingNm

	var status OverlayStatus
	switch {
	case overlap < openBelowPercent:
		status = StatusOpen
	case shortRisk && !in.SelfAligned:
		status = StatusShort
	default:
		status = StatusOK
	}

	budget := (in.ViaSizeNm+in.ContactSizeNm)/2 - overlayBudgetMargin

	return OverlayDerived{
		TotalOverlayNm:     total,
		EffectiveOverlayNm: effective,
		OverlapPercent:     overlap,
		ContactOhm:         resistance,
		OverlayBudgetNm:    budget,
		WithinBudget:       total <= budget,
		ShortRisk:          shortRisk,
		Status:             status,
	}
}

// circleOverlapPercent approximates the overlap of two circles at
// center-to-center distance d: 0 when fully separated, 100 when the smaller
// is contained, linear in between.
func circleOverlapPercent(r1, r2, d float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	minR := math.Min(r1, r2)
	maxR := math.Max(r1, r2)
	switch {
	case d >= r1+r2:
		return 0
	case d+minR <= maxR:
		return 100
	default:
		pct := (r1 + r2 - d) / (2 * minR) * 100
		return clamp(pct, 0, 100)
	}
}

// Overlay wraps the pure model with the generic engine surface.
type Overlay struct {
	Inputs OverlayInputs
}

// NewOverlay returns the engine at its lesson defaults.
func NewOverlay() *Overlay {
	return &Overlay{Inputs: OverlayInputs{
		ViaSizeNm:     20,
		ContactSizeNm: 25,
	}}
}

func (o *Overlay) ID() string { return "overlay" }

// Derived recomputes the classification from the current inputs.
func (o *Overlay) Derived() OverlayDerived {
	return ComputeOverlay(o.Inputs)
}

func (o *Overlay) Controls() []Control {
	return []Control{
		{
			Name: "Overlay X", Unit: "nm", Min: -20, Max: 20, Step: 1,
			Value: func() float64 { return o.Inputs.OverlayXNm },
			Set:   func(v float64) { o.Inputs.OverlayXNm = v },
		},
		{
			Name: "Overlay Y", Unit: "nm", Min: -20, Max: 20, Step: 1,
			Value: func() float64 { return o.Inputs.OverlayYNm },
			Set:   func(v float64) { o.Inputs.OverlayYNm = v },
		},
		{
			Name: "Via size", Unit: "nm", Min: 10, Max: 40, Step: 1,
			Value: func() float64 { return o.Inputs.ViaSizeNm },
			Set:   func(v float64) { o.Inputs.ViaSizeNm = v },
		},
		{
			Name: "Contact size", Unit: "nm", Min: 10, Max: 40, Step: 1,
			Value: func() float64 { return o.Inputs.ContactSizeNm },
			Set:   func(v float64) { o.Inputs.ContactSizeNm = v },
		},
	}
}

func (o *Overlay) Toggles() []Toggle {
	return []Toggle{
		{
			Name: "Self-aligned process",
			On:   func() bool { return o.Inputs.SelfAligned },
			Set:  func(b bool) { o.Inputs.SelfAligned = b },
		},
	}
}

func (o *Overlay) Readouts() []Readout {
	d := o.Derived()
	statusLevel := LevelGood
	if d.Status != StatusOK {
		statusLevel = LevelBad
	}
	budgetLevel := LevelGood
	if !d.WithinBudget {
		budgetLevel = LevelWarn
	}
	return []Readout{
		{Label: "Total overlay", Value: fmt.Sprintf("%.1f nm", d.TotalOverlayNm), Level: LevelInfo},
		{Label: "Effective overlay", Value: fmt.Sprintf("%.1f nm", d.EffectiveOverlayNm), Level: LevelInfo},
		{Label: "Overlap", Value: fmt.Sprintf("%.0f%%", d.OverlapPercent), Level: LevelInfo},
		{Label: "Contact resistance", Value: fmt.Sprintf("%.0f Ω", d.ContactOhm), Level: LevelInfo},
		{Label: "Budget", Value: fmt.Sprintf("%.1f nm", d.OverlayBudgetNm), Level: budgetLevel},
		{Label: "Status", Value: d.Status.String(), Level: statusLevel},
	}
}

func (o *Overlay) Snapshot() map[string]float64 {
	return map[string]float64{
		"overlay_x":    o.Inputs.OverlayXNm,
		"overlay_y":    o.Inputs.OverlayYNm,
		"via_size":     o.Inputs.ViaSizeNm,
		"contact_size": o.Inputs.ContactSizeNm,
		"self_aligned": snapBool(o.Inputs.SelfAligned),
	}
}

func (o *Overlay) Restore(raw map[string]float64) {
	if v, ok := raw["overlay_x"]; ok {
		o.Inputs.OverlayXNm = clamp(v, -20, 20)
	}
	if v, ok := raw["overlay_y"]; ok {
		o.Inputs.OverlayYNm = clamp(v, -20, 20)
	}
	if v, ok := raw["via_size"]; ok {
		o.Inputs.ViaSizeNm = clamp(v, 10, 40)
	}
	if v, ok := raw["contact_size"]; ok {
		o.Inputs.ContactSizeNm = clamp(v, 10, 40)
	}
	if v, ok := raw["self_aligned"]; ok {
		o.Inputs.SelfAligned = restoreBool(v)
	}
}
