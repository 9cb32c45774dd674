package costing

import "fmt"

// ValidationConfig defines thresholds and behavior for the post-run power
// sanity checks. Violations indicate an invalid input combination, not a
// pipeline bug, so by default they are reported as warnings and the flat
// output is still returned for the caller's own rejection logic.
type ValidationConfig struct {
	EnableStrictValidation bool    // if true, violations fail the run
	PowerTolerance         float64 // allowed MW slack in the ordering bounds
}

// CostingPipeline manages the end-to-end flow:
// Adapter -> Power Balance -> Geometry -> CAS accounts -> Aggregation ->
// Result Projection. The stage order is a strict total order imposed by
// data dependency; every run uses its own CostingData, so concurrent runs
// are safe as long as nothing mutates the material catalogue.
type CostingPipeline struct {
	validationConfig ValidationConfig
}

// NewCostingPipeline creates a pipeline with default validation behavior
// (warn and proceed).
func NewCostingPipeline() *CostingPipeline {
	return &CostingPipeline{
		validationConfig: ValidationConfig{
			EnableStrictValidation: false,
			PowerTolerance:         1e-9,
		},
	}
}

// SetValidationConfig updates the validation configuration.
func (p *CostingPipeline) SetValidationConfig(config ValidationConfig) {
	p.validationConfig = config
}

// Run evaluates one design point: it converts the flat configuration into a
// power balance and a capital-cost breakdown and returns the flat result
// mapping. Run is a pure function of its input; nothing is cached between
// calls and no retry logic exists anywhere in the pipeline.
func (p *CostingPipeline) Run(config map[string]interface{}) (map[string]interface{}, error) {
	data, err := p.Evaluate(config)
	if err != nil {
		return nil, err
	}
	return ProjectResults(data), nil
}

// Evaluate is Run without the final projection, for callers that want the
// structured aggregate (tests, sensitivity tooling).
func (p *CostingPipeline) Evaluate(config map[string]interface{}) (*CostingData, error) {
	// 1. Adapter
	data, err := ApplyConfig(config)
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	// 2. Power balance (finalizes PThermalMW / PNetMW for every later stage)
	if err := CalculatePowerBalance(data); err != nil {
		return nil, err
	}

	// 3. Geometry
	if err := CalculateGeometry(data); err != nil {
		return nil, err
	}

	// 4. Direct cost accounts
	CalculateCAS10(data)
	CalculateCAS21(data)
	if err := CalculateCAS220101(data); err != nil {
		return nil, err
	}
	if err := CalculateCAS2203(data); err != nil {
		return nil, err
	}
	CalculateCAS2201(data)
	CalculateCAS2202(data)
	CalculateCAS2204to2207(data)
	AggregateCAS22(data)
	CalculateCAS23to28(data)
	CalculateCAS29(data)

	// 5. Direct capital, then the accounts that read it
	AggregateDirectCapital(data)
	CalculateCAS30(data)
	CalculateCAS40(data)
	CalculateCAS50and60(data)

	// 6. Total capital, then the annualized accounts
	AggregateTotalCapital(data)
	CalculateCAS70(data)
	CalculateCAS80(data)
	CalculateCAS90(data)
	AggregateAnnualized(data)

	// 7. Sanity validation; reported, never clamped
	if err := p.validatePowerBalance(data); err != nil {
		return nil, err
	}
	return data, nil
}

// validatePowerBalance checks the energy-conservation ordering
// 0 <= net <= gross <= thermal and reports violations.
func (p *CostingPipeline) validatePowerBalance(data *CostingData) error {
	out := data.Power
	tol := p.validationConfig.PowerTolerance

	var violations []string
	if out.GrossElectric > out.ThermalPower+tol {
		violations = append(violations,
			fmt.Sprintf("gross electric %.2f MW exceeds thermal %.2f MW", out.GrossElectric, out.ThermalPower))
	}
	if out.NetElectric > out.GrossElectric+tol {
		violations = append(violations,
			fmt.Sprintf("net electric %.2f MW exceeds gross %.2f MW", out.NetElectric, out.GrossElectric))
	}
	if out.NetElectric <= 0 {
		violations = append(violations,
			fmt.Sprintf("net electric %.2f MW is non-positive; downstream costs propagate as zero", out.NetElectric))
	}

	for _, v := range violations {
		if p.validationConfig.EnableStrictValidation {
			return fmt.Errorf("power balance: %s", v)
		}
		fmt.Printf("WARNING: power balance: %s\n", v)
	}
	return nil
}
