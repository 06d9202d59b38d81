package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeChecksum(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ComputeChecksum(nil))
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", ComputeChecksum([]byte("hello")))
}

func TestGenerateUUID(t *testing.T) {
	first := GenerateUUID()
	assert.Len(t, first, 32)
	assert.NotContains(t, first, "-")
	assert.NotEqual(t, first, GenerateUUID())
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single line without terminator", "a", 1},
		{"single line with terminator", "a\n", 1},
		{"trailing terminator", "a\nb\n", 2},
		{"no trailing terminator", "a\nb", 2},
		{"blank lines", "\n\n\n", 3},
		{"crlf", "a\r\nb\r\n", 2},
		{"cr only", "a\rb\rc", 3},
		{"mixed", "a\r\n\nb\rc\n", 4},
		{"five lines", "1\n2\n3\n4\n5\n", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLines(tt.text))
		})
	}
}
