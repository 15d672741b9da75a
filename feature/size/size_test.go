package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		value float64
		unit  string
	}{
		{"Zero", 0, 0, "B"},
		{"Bytes", 500, 500, "B"},
		{"Kilobytes", 1024, 1, "KB"},
		{"Megabytes", 1 << 20, 1, "MB"},
		{"Gigabytes", 1 << 30, 1, "GB"},
		{"Terabytes", 1 << 40, 1, "TB"},
		{"FractionalValue", 1536, 1.5, "KB"},
		{"RoundsToTwoDecimals", 1234567, 1.18, "MB"},
		{"Negative", -42, 0, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, unit := Convert(tt.bytes)
			assert.Equal(t, tt.unit, unit)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestConvertChoosesMostConciseUnit(t *testing.T) {
	value, unit := Convert(1100000000)
	assert.Equal(t, "GB", unit)
	assert.InDelta(t, 1.02, value, 0.01)
}

func TestHuman(t *testing.T) {
	assert.Equal(t, "1.5 KiB", Human(1536))
	assert.Equal(t, "0 B", Human(0))
}
