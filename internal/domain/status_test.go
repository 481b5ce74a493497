package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatus_ShortReasonKeptWhole(t *testing.T) {
	assert.Equal(t, "error:timeout", ErrorStatus("timeout"))
}

func TestErrorStatus_TruncatesLongReason(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := ErrorStatus(long)
	assert.Equal(t, StatusErrorPrefix+strings.Repeat("x", StatusErrorReasonLimit), got)
}

func TestErrorStatus_TruncatesOnRuneBoundary(t *testing.T) {
	// 49 ASCII bytes followed by a two-byte rune straddling the limit.
	reason := strings.Repeat("x", StatusErrorReasonLimit-1) + "é" + "tail"
	got := ErrorStatus(reason)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, StatusErrorPrefix+strings.Repeat("x", StatusErrorReasonLimit-1), got)
}
