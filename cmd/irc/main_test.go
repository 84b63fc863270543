package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestAddressedInput(t *testing.T) {
	input, ok := addressedInput("Whiskers", "Whiskers: https://example.com/cat.png")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/cat.png", input)

	input, ok = addressedInput("Whiskers", "whiskers,   https://example.com/dog.jpg ")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/dog.jpg", input)

	for _, content := range []string{
		"Whiskers:",
		"Whiskers: ",
		"WhiskersBot: hi",
		"hello Whiskers: hi",
		"Whisk",
	} {
		_, ok := addressedInput("Whiskers", content)
		assert.False(t, ok, content)
	}
}

func TestFormatReply(t *testing.T) {
	assert.Equal(t, "john: Result: cat, Confidence: 0.97", formatReply("john", "Result: cat, Confidence: 0.97"))
	assert.Equal(t, "john: internal error on line 2", formatReply("john", "internal error\non line 2\n"))

	reply := formatReply("john", strings.Repeat("x", 1000))
	assert.Equal(t, "john: "+strings.Repeat("x", maxReplyLength)+"...", reply)
}

func TestFormatReplyKeepsRunesIntact(t *testing.T) {
	// 3-byte runes, so that maxReplyLength falls in the middle of one
	reply := formatReply("john", strings.Repeat("€", 1000))

	assert.True(t, utf8.ValidString(reply))
	assert.LessOrEqual(t, len(reply), len("john: ")+maxReplyLength+len("..."))
	assert.Equal(t, "john: "+strings.Repeat("€", maxReplyLength/3)+"...", reply)
}
