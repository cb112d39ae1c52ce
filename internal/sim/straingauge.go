package sim

import "fmt"

// Cantilever beam geometry for the strain-gauge demo. Fixed: the learner
// varies load, material, and electrical parameters, not the beam.
const (
	beamLengthM    = 0.1
	beamWidthM     = 0.02
	beamThickM     = 0.005
	thermalCoeff   = 11e-6 // apparent strain per °C for an uncompensated gauge
	referenceTempC = 20.0
	minModulusGPa  = 1.0 // divide-by-zero guard for hostile restores
)

// StrainGaugeInputs are the slider and toggle values for the bridge demo.
type StrainGaugeInputs struct {
	ForceN           float64 // 0..200
	YoungsModulusGPa float64 // 50..400
	GaugeFactor      float64 // 1..5
	ExcitationV      float64 // 1..12
	TemperatureC     float64 // -20..60
	UseDummyGauge    bool    // dummy gauge cancels thermal apparent strain
	FullBridge       bool    // full bridge drops the quarter-bridge /4 divisor
}

// StrainGaugeDerived are the computed quantities for display.
type StrainGaugeDerived struct {
	BendingStressMPa float64
	MechStrain       float64
	ThermalStrain    float64
	EffectiveStrain  float64
	DeltaROverR      float64
	BridgeOutputMV   float64
}

// ComputeStrainGauge derives bridge output from cantilever bending
// mechanics. Pure and total: every in-range input (and any clamped
// out-of-range one) yields finite output.
func ComputeStrainGauge(in StrainGaugeInputs) StrainGaugeDerived {
	e := in.YoungsModulusGPa
	if e < minModulusGPa {
		e = minModulusGPa
	}

	moment := in.ForceN * beamLengthM
	inertia := beamWidthM * beamThickM * beamThickM * beamThickM / 12
	stressPa := moment * (beamThickM / 2) / inertia
	mechStrain := stressPa / (e * 1e9)

	thermal := 0.0
	if !in.UseDummyGauge {
		thermal = thermalCoeff * (in.TemperatureC - referenceTempC)
	}
	effective := mechStrain + thermal

	deltaR := in.GaugeFactor * effective

	out := in.ExcitationV * in.GaugeFactor * effective
	if !in.FullBridge {
		out /= 4
	}

	return StrainGaugeDerived{
		BendingStressMPa: stressPa / 1e6,
		MechStrain:       mechStrain,
		ThermalStrain:    thermal,
		EffectiveStrain:  effective,
		DeltaROverR:      deltaR,
		BridgeOutputMV:   out * 1e3,
	}
}

// StrainGauge wraps the pure model with the generic engine surface.
type StrainGauge struct {
	Inputs StrainGaugeInputs
}

// NewStrainGauge returns the engine at its lesson defaults.
func NewStrainGauge() *StrainGauge {
	return &StrainGauge{Inputs: StrainGaugeInputs{
		ForceN:           50,
		YoungsModulusGPa: 200, // steel
		GaugeFactor:      2,
		ExcitationV:      5,
		TemperatureC:     referenceTempC,
	}}
}

func (s *StrainGauge) ID() string { return "straingauge" }

// Derived recomputes the output quantities from the current inputs.
func (s *StrainGauge) Derived() StrainGaugeDerived {
	return ComputeStrainGauge(s.Inputs)
}

func (s *StrainGauge) Controls() []Control {
	return []Control{
		{
			Name: "Applied force", Unit: "N", Min: 0, Max: 200, Step: 5,
			Value: func() float64 { return s.Inputs.ForceN },
			Set:   func(v float64) { s.Inputs.ForceN = v },
		},
		{
			Name: "Young's modulus", Unit: "GPa", Min: 50, Max: 400, Step: 10,
			Value: func() float64 { return s.Inputs.YoungsModulusGPa },
			Set:   func(v float64) { s.Inputs.YoungsModulusGPa = v },
		},
		{
			Name: "Gauge factor", Unit: "", Min: 1, Max: 5, Step: 0.5,
			Value: func() float64 { return s.Inputs.GaugeFactor },
			Set:   func(v float64) { s.Inputs.GaugeFactor = v },
		},
		{
			Name: "Excitation", Unit: "V", Min: 1, Max: 12, Step: 0.5,
			Value: func() float64 { return s.Inputs.ExcitationV },
			Set:   func(v float64) { s.Inputs.ExcitationV = v },
		},
		{
			Name: "Temperature", Unit: "°C", Min: -20, Max: 60, Step: 5,
			Value: func() float64 { return s.Inputs.TemperatureC },
			Set:   func(v float64) { s.Inputs.TemperatureC = v },
		},
	}
}

func (s *StrainGauge) Toggles() []Toggle {
	return []Toggle{
		{
			Name: "Dummy gauge (thermal compensation)",
			On:   func() bool { return s.Inputs.UseDummyGauge },
			Set:  func(b bool) { s.Inputs.UseDummyGauge = b },
		},
		{
			Name: "Full bridge",
			On:   func() bool { return s.Inputs.FullBridge },
			Set:  func(b bool) { s.Inputs.FullBridge = b },
		},
	}
}

func (s *StrainGauge) Readouts() []Readout {
	d := s.Derived()
	thermalLevel := LevelGood
	if !s.Inputs.UseDummyGauge && d.ThermalStrain != 0 {
		thermalLevel = LevelWarn
	}
	return []Readout{
		{Label: "Bending stress", Value: fmt.Sprintf("%.1f MPa", d.BendingStressMPa), Level: LevelInfo},
		{Label: "Mechanical strain", Value: fmt.Sprintf("%.1f µε", d.MechStrain*1e6), Level: LevelInfo},
		{Label: "Thermal strain", Value: fmt.Sprintf("%.1f µε", d.ThermalStrain*1e6), Level: thermalLevel},
		{Label: "ΔR/R", Value: fmt.Sprintf("%.6f", d.DeltaROverR), Level: LevelInfo},
		{Label: "Bridge output", Value: fmt.Sprintf("%.3f mV", d.BridgeOutputMV), Level: LevelGood},
	}
}

func (s *StrainGauge) Snapshot() map[string]float64 {
	return map[string]float64{
		"force_n":       s.Inputs.ForceN,
		"modulus_gpa":   s.Inputs.YoungsModulusGPa,
		"gauge_factor":  s.Inputs.GaugeFactor,
		"excitation_v":  s.Inputs.ExcitationV,
		"temperature_c": s.Inputs.TemperatureC,
		"dummy_gauge":   snapBool(s.Inputs.UseDummyGauge),
		"full_bridge":   snapBool(s.Inputs.FullBridge),
	}
}

func (s *StrainGauge) Restore(raw map[string]float64) {
	if v, ok := raw["force_n"]; ok {
		s.Inputs.ForceN = clamp(v, 0, 200)
	}
	if v, ok := raw["modulus_gpa"]; ok {
		s.Inputs.YoungsModulusGPa = clamp(v, 50, 400)
	}
	if v, ok := raw["gauge_factor"]; ok {
		s.Inputs.GaugeFactor = clamp(v, 1, 5)
	}
	if v, ok := raw["excitation_v"]; ok {
		s.Inputs.ExcitationV = clamp(v, 1, 12)
	}
	if v, ok := raw["temperature_c"]; ok {
		s.Inputs.TemperatureC = clamp(v, -20, 60)
	}
	if v, ok := raw["dummy_gauge"]; ok {
		s.Inputs.UseDummyGauge = restoreBool(v)
	}
	if v, ok := raw["full_bridge"]; ok {
		s.Inputs.FullBridge = restoreBool(v)
	}
}
