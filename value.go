package flexview

import (
	"fmt"
	"math"

	"github.com/kjk/flex"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // No value set
	UnitPoint                 // Absolute points
	UnitPercent               // Percentage of the parent's size
	UnitAuto                  // Computed from content/flex
)

func (u Unit) String() string {
	switch u {
	case UnitUndefined:
		return "undefined"
	case UnitPoint:
		return "point"
	case UnitPercent:
		return "percent"
	case UnitAuto:
		return "auto"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Value represents a style dimension tagged with its unit.
type Value struct {
	Amount float64
	Unit   Unit
}

// Points returns a Value of n absolute points.
func Points(n float64) Value {
	return Value{Amount: n, Unit: UnitPoint}
}

// Percent returns a Value representing a percentage of the parent's size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Amount: math.NaN(), Unit: UnitAuto}
}

// Undefined returns an unset Value.
func Undefined() Value {
	return Value{Amount: math.NaN(), Unit: UnitUndefined}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsUndefined returns true if no value is set.
func (v Value) IsUndefined() bool {
	return v.Unit == UnitUndefined
}

func (v Value) String() string {
	switch v.Unit {
	case UnitPoint:
		return fmt.Sprintf("%gpt", v.Amount)
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.Amount)
	default:
		return v.Unit.String()
	}
}

func (v Value) toFlex() flex.Value {
	switch v.Unit {
	case UnitPoint:
		return flex.Value{Value: float32(v.Amount), Unit: flex.UnitPoint}
	case UnitPercent:
		return flex.Value{Value: float32(v.Amount), Unit: flex.UnitPercent}
	case UnitAuto:
		return flex.Value{Value: flex.Undefined, Unit: flex.UnitAuto}
	default:
		return flex.Value{Value: flex.Undefined, Unit: flex.UnitUndefined}
	}
}

func valueFromFlex(v flex.Value) Value {
	switch v.Unit {
	case flex.UnitPoint:
		return Points(float64(v.Value))
	case flex.UnitPercent:
		return Percent(float64(v.Value))
	case flex.UnitAuto:
		return Auto()
	default:
		return Undefined()
	}
}

// unitSet lists the units a style property accepts.
type unitSet uint8

const (
	pointOrPercent     unitSet = 1<<UnitPoint | 1<<UnitPercent
	pointPercentOrAuto unitSet = pointOrPercent | 1<<UnitAuto
)

func (s unitSet) allows(u Unit) bool {
	return s&(1<<u) != 0
}

// checkUnit panics when property does not accept v's unit.
func checkUnit(property string, v Value, allowed unitSet) {
	if !allowed.allows(v.Unit) {
		panic(fmt.Sprintf("flexview: %s does not support %s values", property, v.Unit))
	}
}
