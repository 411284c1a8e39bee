package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedIP(t *testing.T) {
	t.Parallel()

	cidrs := []string{"10.0.0.0/8", "not-a-cidr", "192.168.0.0/16"}

	assert.True(t, IsAllowedIP("10.1.2.3", cidrs))
	assert.True(t, IsAllowedIP("192.168.4.5", cidrs))
	assert.False(t, IsAllowedIP("8.8.8.8", cidrs))
	assert.False(t, IsAllowedIP("garbage", cidrs))
	assert.False(t, IsAllowedIP("10.1.2.3", nil))
}
