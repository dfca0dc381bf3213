package spatialmap

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an argument cannot be indexed.
var ErrInvalidArgument = errors.New("invalid argument")

// Axis names a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ErrInvalidCoordinate indicates a NaN or infinite coordinate.
//
// It unwraps to ErrInvalidArgument.
type ErrInvalidCoordinate struct {
	Axis  Axis
	Value float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid %s coordinate: %v", e.Axis, e.Value)
}

func (e *ErrInvalidCoordinate) Unwrap() error { return ErrInvalidArgument }
