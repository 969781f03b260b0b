package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/result-reporter/internal/models"
)

func TestFifths(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 22.7, want: 22.3},
		{in: 22.5, want: 22.2},
		{in: 46.1, want: 46.0},
		{in: 47.7, want: 47.3},
		{in: 72.1, want: 72.0},
		{in: 110.3, want: 110.1},
		{in: 59.9, want: 59.4},
	}

	for _, tt := range tests {
		v, ok := Fifths(models.NewFigure(tt.in)).Value()
		assert.True(t, ok)
		assert.InDelta(t, tt.want, v, 1e-9, "fifths of %v", tt.in)
	}

	assert.False(t, Fifths(models.Undefined()).Defined())
}
