package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToPtrAndDeref(t *testing.T) {
	v := ToPtr("stage name")
	assert.NotNil(t, v)
	assert.Equal(t, "stage name", Deref(v))

	var nilPtr *int
	assert.Equal(t, 0, Deref(nilPtr))
}

func TestIsTrue(t *testing.T) {
	assert.True(t, IsTrue(ToPtr(true)))
	assert.False(t, IsTrue(ToPtr(false)))
	assert.False(t, IsTrue(nil))
}

func TestUTCNow(t *testing.T) {
	now := UTCNow()
	assert.Equal(t, time.UTC, now.Location())

	later := UTCNowAdd(1 * time.Hour)
	assert.True(t, later.After(now))
}

func TestIsExpired(t *testing.T) {
	assert.True(t, IsExpired(UTCNow().Add(-1*time.Minute)))
	assert.False(t, IsExpired(UTCNow().Add(1*time.Minute)))
}
