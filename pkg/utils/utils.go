package utils

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ComputeChecksum compute the md5 hash of the given content
func ComputeChecksum(content []byte) string {
	return fmt.Sprintf("%x", md5.Sum(content))
}

// GenerateUUID generates uuid v4
func GenerateUUID() string {
	uuidV4 := uuid.New() // panics on error
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, uuidV4.String())
}

// CountLines returns the number of lines in text. "\n", "\r\n" and "\r" all end a
// line and a trailing terminator does not start a new one.
func CountLines(text string) int {
	count := 0
	pending := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			count++
			pending = false
		case '\r':
			count++
			pending = false
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		default:
			pending = true
		}
	}
	if pending {
		count++
	}
	return count
}
