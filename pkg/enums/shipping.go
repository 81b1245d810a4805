package enums

import "fmt"

// Destination represents the supported shipping destinations.
type Destination string

const (
	DestinationDomestic      Destination = "domestic"
	DestinationCrossBorder   Destination = "cross_border"
	DestinationInternational Destination = "international"
)

var validDestinations = []Destination{
	DestinationDomestic,
	DestinationCrossBorder,
	DestinationInternational,
}

// String implements fmt.Stringer.
func (d Destination) String() string {
	return string(d)
}

// IsValid reports whether the value is a known Destination.
func (d Destination) IsValid() bool {
	for _, candidate := range validDestinations {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDestination converts raw input into a Destination.
func ParseDestination(value string) (Destination, error) {
	for _, candidate := range validDestinations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid destination %q", value)
}

// ShippingMethod represents the supported shipping service levels.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingPriority ShippingMethod = "priority"
)

var validShippingMethods = []ShippingMethod{
	ShippingStandard,
	ShippingExpress,
	ShippingPriority,
}

// String implements fmt.Stringer.
func (m ShippingMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ShippingMethod.
func (m ShippingMethod) IsValid() bool {
	for _, candidate := range validShippingMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseShippingMethod converts raw input into a ShippingMethod.
func ParseShippingMethod(value string) (ShippingMethod, error) {
	for _, candidate := range validShippingMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping method %q", value)
}
