package model

import "strings"

// MeasurementType identifies which garment measurement set a receipt carries.
type MeasurementType string

const (
	MeasurementShirt MeasurementType = "shirt"
	MeasurementPant  MeasurementType = "pant"
	MeasurementSuit  MeasurementType = "suit"
)

// ParseMeasurementType normalizes raw input to a known measurement type.
func ParseMeasurementType(raw string) (MeasurementType, bool) {
	switch MeasurementType(strings.ToLower(strings.TrimSpace(raw))) {
	case MeasurementShirt:
		return MeasurementShirt, true
	case MeasurementPant:
		return MeasurementPant, true
	case MeasurementSuit:
		return MeasurementSuit, true
	default:
		return "", false
	}
}
