package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	ref := time.Date(2024, 3, 10, 2, 30, 0, 0, time.UTC)

	info, err := Describe("0 3 * * *", ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC), info.Next)
	assert.Equal(t, 30*time.Minute, info.TimeUntilNext)
}

func TestDescribeDescriptor(t *testing.T) {
	ref := time.Date(2024, 3, 10, 2, 30, 0, 0, time.UTC)

	info, err := Describe("@daily", ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), info.Next)
}

func TestDescribeInvalid(t *testing.T) {
	_, err := Describe("not a schedule", time.Now())
	assert.Error(t, err)
}
