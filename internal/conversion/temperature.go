package conversion

import "fmt"

const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"

	absoluteZeroCelsius = 273.15
)

// ConvertTemperature converts between Celsius, Fahrenheit and Kelvin,
// pivoting through Celsius.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	var celsius float64
	switch from {
	case Celsius:
		celsius = value
	case Fahrenheit:
		celsius = (value - 32) * 5 / 9
	case Kelvin:
		celsius = value - absoluteZeroCelsius
	default:
		return 0, fmt.Errorf("temperature: %w %q", ErrUnknownUnit, from)
	}

	switch to {
	case Celsius:
		return celsius, nil
	case Fahrenheit:
		return celsius*9/5 + 32, nil
	case Kelvin:
		return celsius + absoluteZeroCelsius, nil
	default:
		return 0, fmt.Errorf("temperature: %w %q", ErrUnknownUnit, to)
	}
}
