package logger

import (
	"fmt"
	"io"
	"regexp"
)

// Redaction is the replacement string written in place of obfuscated values.
const Redaction = "***"

// RedactingWriter is an io.Writer that obfuscates the values of configured
// JSON fields in every log line before forwarding it to the underlying
// writer. zerolog emits one complete JSON line per Write call, so the
// rewrite can be applied per call without buffering.
//
// Only string-valued fields are matched: the pattern rewrites
// `"field":"value"` into `"field":"***"`. Non-string values (numbers,
// objects) pass through untouched, which is acceptable because all PII
// fields in this service (password, reset_token, session_id) are strings.
type RedactingWriter struct {
	w       io.Writer
	pattern *regexp.Regexp
}

// NewRedactingWriter wraps w so that the values of the named JSON fields are
// replaced with Redaction. With no fields the writer forwards lines
// unchanged.
func NewRedactingWriter(w io.Writer, fields ...string) *RedactingWriter {
	rw := &RedactingWriter{w: w}
	if len(fields) == 0 {
		return rw
	}

	alternatives := ""
	for i, field := range fields {
		if i > 0 {
			alternatives += "|"
		}
		alternatives += regexp.QuoteMeta(field)
	}

	// Matches "field":"value" allowing escaped quotes inside the value.
	rw.pattern = regexp.MustCompile(fmt.Sprintf(`"(%s)":"(?:[^"\\]|\\.)*"`, alternatives))

	return rw
}

// Write obfuscates configured field values in p and forwards the result.
// It reports len(p) on success so that callers do not treat the length
// change introduced by the rewrite as a short write.
func (rw *RedactingWriter) Write(p []byte) (int, error) {
	if rw.pattern == nil {
		return rw.w.Write(p)
	}

	redacted := rw.pattern.ReplaceAll(p, []byte(`"$1":"`+Redaction+`"`))
	if _, err := rw.w.Write(redacted); err != nil {
		return 0, fmt.Errorf("error writing redacted log line: %w", err)
	}

	return len(p), nil
}
