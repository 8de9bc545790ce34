package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	// Local date, not UTC: 01:30 Jakarta time is still the previous day in UTC.
	ts := time.Date(2025, 9, 12, 1, 30, 0, 0, loc)
	assert.Equal(t, "2025-09-12", Today(ts))
	assert.Equal(t, "2025-09-11", Today(ts.UTC()))
}
