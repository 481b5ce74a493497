package domain

import "unicode/utf8"

// Refresh status values stored under the status key. Error states use the
// "error:" prefix followed by a truncated reason.
const (
	StatusIdle     = "idle"
	StatusRunning  = "running"
	StatusComplete = "complete"

	StatusErrorPrefix = "error:"
)

// StatusErrorReasonLimit caps the reason recorded after "error:".
const StatusErrorReasonLimit = 50

// ErrorStatus builds the terminal status value for a failed run. The
// reason is cut on a rune boundary so the stored value stays valid UTF-8.
func ErrorStatus(reason string) string {
	if len(reason) > StatusErrorReasonLimit {
		cut := StatusErrorReasonLimit
		for cut > 0 && !utf8.RuneStart(reason[cut]) {
			cut--
		}
		reason = reason[:cut]
	}
	return StatusErrorPrefix + reason
}
