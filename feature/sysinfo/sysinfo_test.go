package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.Regexp(t, `^\d{2}-\d{2}-\d{4}$`, Date())
}

func TestClock(t *testing.T) {
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}\.\d{2}$`, Clock())
}

func TestOS(t *testing.T) {
	info := OS()
	assert.NotEmpty(t, info.System)
}
