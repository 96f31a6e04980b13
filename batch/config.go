package batch

import "fmt"

// PointConfig is one simulation parameter point (spec.md §6), loadable
// from YAML via gopkg.in/yaml.v3 the same way the teacher's workload
// configs are.
type PointConfig struct {
	NumReplications int     `yaml:"num_replications"`
	N               int     `yaml:"n"`
	C               int     `yaml:"c"`
	S               int     `yaml:"s"`
	Rs              int     `yaml:"rs"`
	FClk            float64 `yaml:"f_clk"`
	ADist           string  `yaml:"a_dist"`
	Lambd           float64 `yaml:"lambda"`
	SimClocks       float64 `yaml:"sim_clocks"`

	// ServiceDiscipline defaults to FCFS (queueing.FCFS's zero value is
	// not usable directly since ServiceDiscipline is a string type with
	// no meaningful empty member, so YAML omission is handled by
	// serviceDiscipline()).
	ServiceDiscipline string `yaml:"service_discipline,omitempty"`
}

// Validate checks the parameter tuple's geometry and cardinalities, the
// same invalid-parameter class construction raises (spec.md §7, kind 1).
func (c PointConfig) Validate() error {
	if c.NumReplications < 1 {
		return fmt.Errorf("%w: num_replications=%d must be >= 1", ErrInvalidParameter, c.NumReplications)
	}
	if c.C <= 0 || c.N < c.C || c.N%c.C != 0 {
		return fmt.Errorf("%w: N=%d must be >= C=%d and a multiple of it", ErrInvalidParameter, c.N, c.C)
	}
	if c.Rs < 1 {
		return fmt.Errorf("%w: Rs=%d must be >= 1", ErrInvalidParameter, c.Rs)
	}
	if c.FClk <= 0 {
		return fmt.Errorf("%w: f_clk=%g must be positive", ErrInvalidParameter, c.FClk)
	}
	if c.SimClocks <= 0 {
		return fmt.Errorf("%w: sim_clocks=%g must be positive", ErrInvalidParameter, c.SimClocks)
	}
	if c.Lambd <= 0 {
		return fmt.Errorf("%w: lambda=%g must be positive", ErrInvalidParameter, c.Lambd)
	}
	return nil
}

// TClk is the clock period implied by FClk.
func (c PointConfig) TClk() float64 { return 1 / c.FClk }

// WarmupTime is the statistics warmup duration, fixed at 100 clocks per
// run_single.py's stats_warmup_time=100*t_clk.
func (c PointConfig) WarmupTime() float64 { return 100 * c.TClk() }

// HorizonTime is the simulated duration the kernel should run to.
func (c PointConfig) HorizonTime() float64 { return c.SimClocks * c.TClk() }
