package common

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"start", 60, -60, 0, 60},
		{"middle", 60, -60, 0.5, 0},
		{"end", 0.4, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"inside", 0.3, 0.3},
		{"below", -2, 0},
		{"above", 1.7, 1},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, 0, 1); got != tt.expected {
				t.Errorf("Clamp(%v) = %v, expected %v", tt.v, got, tt.expected)
			}
		})
	}
}

func TestRoundJS(t *testing.T) {
	tests := []struct {
		v        float64
		expected float64
	}{
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{0.49, 0},
		{-0.5, 0},
		{0.49999999999999994, 0},
		{-0.49999999999999994, 0},
		{4999.5, 5000},
	}

	for _, tt := range tests {
		if got := RoundJS(tt.v); got != tt.expected {
			t.Errorf("RoundJS(%v) = %v, expected %v", tt.v, got, tt.expected)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        float64
		expected string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{0.5, "0.5"},
		{-5, "-5"},
		{0.75, "0.75"},
		{1.0 / 3, "0.3333333333333333"},
		{1e-7, "1e-7"},
		{-2.5e-8, "-2.5e-8"},
		{0.000001, "0.000001"},
		{1e21, "1e+21"},
		{123456789, "123456789"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.expected {
			t.Errorf("FormatNumber(%v) = %q, expected %q", tt.v, got, tt.expected)
		}
	}
}
