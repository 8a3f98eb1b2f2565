package prefabs

import (
	"errors"
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/aimstick/control"
)

// ErrNoScale is returned when a power curve script does not define `scale`.
var ErrNoScale = errors.New("prefabs: power curve script does not define scale")

// LoadPowerCurve compiles a tengo script mapping the global `power` to the
// aim indicator's y-scale, read back from the global `scale`. The script runs
// once at load so broken scripts fail early. A run error at play time logs and
// falls back to control.LinearPowerCurve.
func LoadPowerCurve(name string) (func(power float64) float64, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	_ = script.Add("power", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile %s: %w", name, err)
	}

	curve := &scriptCurve{name: name, compiled: compiled}
	if _, err := curve.eval(0); err != nil {
		return nil, fmt.Errorf("prefabs: run %s: %w", name, err)
	}
	return curve.scale, nil
}

type scriptCurve struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

func (c *scriptCurve) eval(power float64) (float64, error) {
	if err := c.compiled.Set("power", power); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}
	// globals only hold values once the script has run
	if !c.compiled.IsDefined("scale") {
		return 0, ErrNoScale
	}
	return c.compiled.Get("scale").Float(), nil
}

func (c *scriptCurve) scale(power float64) float64 {
	v, err := c.eval(power)
	if err != nil {
		if !c.failed {
			log.Printf("prefabs: power curve %s: %v", c.name, err)
			c.failed = true
		}
		return control.LinearPowerCurve(power)
	}
	return v
}
