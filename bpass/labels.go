// SPDX-License-Identifier: MIT

package bpass

import (
	"fmt"
	"strconv"
)

// metallicityLabels is the fixed BPASS metallicity vocabulary, metal-poor first.
var metallicityLabels = []string{
	"em5", "em4", "001", "002", "003", "004", "006", "010", "014", "020", "030", "040",
}

// imfLabels lists the IMF variants shipped with BPASS v2.1/v2.2.
var imfLabels = []string{
	"imf_chab100", "imf_chab300",
	"imf100_100", "imf100_300",
	"imf135_100", "imf135_300", "imf135all_100",
	"imf170_100", "imf170_300",
}

var (
	metallicitySet = toSet(metallicityLabels)
	imfSet         = toSet(imfLabels)
)

func toSet(labels []string) map[string]struct{} {
	m := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		m[l] = struct{}{}
	}

	return m
}

// IsValidMetallicityLabel reports whether label is a BPASS metallicity tag.
// Total and case-sensitive.
func IsValidMetallicityLabel(label string) bool {
	_, ok := metallicitySet[label]

	return ok
}

// IsValidIMFLabel reports whether label names a BPASS IMF variant.
func IsValidIMFLabel(label string) bool {
	_, ok := imfSet[label]

	return ok
}

// CheckMetallicity returns ErrUnknownLabel unless label is valid.
func CheckMetallicity(label string) error {
	if !IsValidMetallicityLabel(label) {
		return fmt.Errorf("metallicity %q: %w", label, ErrUnknownLabel)
	}

	return nil
}

// CheckIMF returns ErrUnknownLabel unless label is valid.
func CheckIMF(label string) error {
	if !IsValidIMFLabel(label) {
		return fmt.Errorf("imf %q: %w", label, ErrUnknownLabel)
	}

	return nil
}

// Metallicities returns the metallicity labels in increasing Z order.
func Metallicities() []string {
	return append([]string(nil), metallicityLabels...)
}

// IMFs returns the IMF labels.
func IMFs() []string {
	return append([]string(nil), imfLabels...)
}

// MetallicityValue converts a label to the mass fraction Z it encodes:
// "em5" → 1e-5, "em4" → 1e-4, "014" → 0.014.
func MetallicityValue(label string) (float64, error) {
	if err := CheckMetallicity(label); err != nil {
		return 0, err
	}
	switch label {
	case "em5":
		return 1e-5, nil
	case "em4":
		return 1e-4, nil
	}
	v, err := strconv.ParseFloat("0."+label, 64)
	if err != nil {
		return 0, fmt.Errorf("metallicity %q: %w", label, err)
	}

	return v, nil
}
