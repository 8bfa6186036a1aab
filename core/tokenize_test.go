package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		expected []string
	}{
		{"single word", "ls", []string{"ls"}},
		{"command with args", "ls -l /tmp", []string{"ls", "-l", "/tmp"}},
		{"collapsed runs", "a  \t b", []string{"a", "b"}},
		{"leading and trailing", "  cd /home  ", []string{"cd", "/home"}},
		{"tabs", "grep\tfoo\tbar", []string{"grep", "foo", "bar"}},
		{"carriage return", "echo hi\r", []string{"echo", "hi"}},
		{"bell", "echo\ahi", []string{"echo", "hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.line))
		})
	}
}

func TestTokenizeDelimiterOnly(t *testing.T) {
	for _, line := range []string{"", " ", "   ", "\t", " \t\r\n\a "} {
		t.Run(fmt.Sprintf("%q", line), func(t *testing.T) {
			assert.Empty(t, Tokenize(line))
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	// N space separated words come back as exactly N tokens in order.
	for n := 1; n < 20; n++ {
		var words []string
		for i := 0; i < n; i++ {
			words = append(words, fmt.Sprintf("word%d", i))
		}

		assert.Equal(t, words, Tokenize(strings.Join(words, " ")))
	}
}
