package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSortKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"points allowed", "total_points", "total_points"},
		{"co2 allowed", "total_co2_saved", "total_co2_saved"},
		{"activity count allowed", "activities_count", "activities_count"},
		{"streak allowed", "current_streak", "current_streak"},
		{"empty falls back", "", "total_points"},
		{"unknown falls back", "longest_streak", "total_points"},
		{"injection attempt falls back", "total_points; DROP TABLE users", "total_points"},
		{"case sensitive", "Total_Points", "total_points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSortKey(tt.in))
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 50, NormalizeLimit(0))
	assert.Equal(t, 50, NormalizeLimit(-10))
	assert.Equal(t, 1, NormalizeLimit(1))
	assert.Equal(t, 100, NormalizeLimit(100))
	assert.Equal(t, 100, NormalizeLimit(500))
}
