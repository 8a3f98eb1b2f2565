package prefabs

import (
	"fmt"

	"github.com/milk9111/aimstick/control"
	"gopkg.in/yaml.v3"
)

const ControllerSpecName = "controller.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ControllerSpec is the YAML form of control.Config. Omitted fields keep the
// stock tuning.
type ControllerSpec struct {
	KnobRadius    float64  `yaml:"knob_radius"`
	KnobSize      float64  `yaml:"knob_size"`
	Speed         float64  `yaml:"speed"`
	AimRegionX    *float64 `yaml:"aim_region_x"`
	ResetDeadzone float64  `yaml:"reset_deadzone"`

	ResetDuration     *float64 `yaml:"reset_duration"`
	FlipDuration      *float64 `yaml:"flip_duration"`
	AimRotateDuration *float64 `yaml:"aim_rotate_duration"`
	AimScaleDuration  *float64 `yaml:"aim_scale_duration"`

	PowerStep  float64  `yaml:"power_step"`
	PowerMin   *float64 `yaml:"power_min"`
	PowerMax   *float64 `yaml:"power_max"`
	PowerCurve string   `yaml:"power_curve"`
}

func LoadControllerSpec(filename string) (*ControllerSpec, error) {
	if filename == "" {
		filename = ControllerSpecName
	}
	spec, err := LoadSpec[ControllerSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the spec, compiling the power curve script when one is named.
func (s *ControllerSpec) Config() (control.Config, error) {
	cfg := control.DefaultConfig()
	if s == nil {
		return cfg, nil
	}

	setPositive(&cfg.KnobRadius, s.KnobRadius)
	setPositive(&cfg.KnobSize, s.KnobSize)
	setPositive(&cfg.Speed, s.Speed)
	setPositive(&cfg.ResetDeadzone, s.ResetDeadzone)
	setPositive(&cfg.PowerStep, s.PowerStep)
	setOptional(&cfg.AimRegionX, s.AimRegionX)
	setOptional(&cfg.ResetDuration, s.ResetDuration)
	setOptional(&cfg.FlipDuration, s.FlipDuration)
	setOptional(&cfg.AimRotateDuration, s.AimRotateDuration)
	setOptional(&cfg.AimScaleDuration, s.AimScaleDuration)

	if s.PowerMin != nil && s.PowerMax != nil && *s.PowerMin > *s.PowerMax {
		return cfg, fmt.Errorf("prefabs: power_min %v above power_max %v", *s.PowerMin, *s.PowerMax)
	}
	if s.PowerMin != nil {
		cfg.PowerMin = control.Float64(*s.PowerMin)
	}
	if s.PowerMax != nil {
		cfg.PowerMax = control.Float64(*s.PowerMax)
	}

	if s.PowerCurve != "" {
		curve, err := LoadPowerCurve(s.PowerCurve)
		if err != nil {
			return cfg, err
		}
		cfg.PowerCurve = curve
	}
	return cfg, nil
}

// LoadControllerConfig loads and converts a controller spec in one step.
func LoadControllerConfig(filename string) (control.Config, error) {
	spec, err := LoadControllerSpec(filename)
	if err != nil {
		return control.DefaultConfig(), err
	}
	return spec.Config()
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setOptional(dst *float64, v *float64) {
	if v != nil && *v >= 0 {
		*dst = *v
	}
}
