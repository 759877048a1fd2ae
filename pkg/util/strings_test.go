package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hello", Truncate("hello", 100))
	assert.Equal(t, "hel…", Truncate("hello", 3))
	assert.Equal(t, "приве…", Truncate("приветик", 5))
}
