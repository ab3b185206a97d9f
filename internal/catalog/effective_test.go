package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveDatedAlways(t *testing.T) {
	e := always("v1")

	v, ok := e.at(date(1990, time.January, 1))
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	v, ok = e.at(date(2100, time.January, 1))
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
}

func TestEffectiveDatedCutover(t *testing.T) {
	cutover := date(2026, time.January, 6)
	e := always("old").from(cutover, "new")

	v, ok := e.at(date(2026, time.January, 5))
	assert.True(t, ok)
	assert.Equal(t, "old", v)

	// The cutover date itself belongs to the new generation.
	v, ok = e.at(cutover)
	assert.True(t, ok)
	assert.Equal(t, "new", v)

	v, ok = e.at(date(2026, time.June, 1))
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestEffectiveDatedBeforeFirstGeneration(t *testing.T) {
	e := effectiveDated[string]{}.from(date(2026, time.January, 1), "v1")

	_, ok := e.at(date(2025, time.December, 31))
	assert.False(t, ok)

	v, ok := e.at(date(2026, time.January, 1))
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
}
