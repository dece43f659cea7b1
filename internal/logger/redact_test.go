package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedactingWriter_ObfuscatesConfiguredFields verifies that the values of
// configured fields are replaced with the redaction marker while other fields
// pass through untouched.
func TestRedactingWriter_ObfuscatesConfiguredFields(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(NewRedactingWriter(&buf, "password", "reset_token"))

	l.Info().
		Str("email", "bob@dylan.com").
		Str("password", "my secret pwd").
		Str("reset_token", "b2abb4f5-3d4a-4ea6-81ad-871f9c07f5ae").
		Msg("login attempt")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, Redaction, entry["password"])
	assert.Equal(t, Redaction, entry["reset_token"])
	assert.Equal(t, "bob@dylan.com", entry["email"])
	assert.Equal(t, "login attempt", entry["message"])
}

// TestRedactingWriter_HandlesEscapedQuotes verifies that values containing
// escaped quotes are redacted in full rather than truncated at the escape.
func TestRedactingWriter_HandlesEscapedQuotes(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(NewRedactingWriter(&buf, "password"))

	l.Info().Str("password", `tricky"quote`).Msg("quoted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, Redaction, entry["password"])
}

// TestRedactingWriter_NoFields verifies that a writer configured without
// fields forwards log lines unchanged.
func TestRedactingWriter_NoFields(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(NewRedactingWriter(&buf))

	l.Info().Str("password", "visible").Msg("no redaction")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["password"])
}

// TestRedactingWriter_ReportsOriginalLength verifies the io.Writer contract:
// the reported length matches the input, not the rewritten line.
func TestRedactingWriter_ReportsOriginalLength(t *testing.T) {
	var buf bytes.Buffer
	rw := NewRedactingWriter(&buf, "password")

	line := []byte(`{"password":"a very long secret value indeed"}` + "\n")
	n, err := rw.Write(line)
	require.NoError(t, err)
	assert.Equal(t, len(line), n)
	assert.Contains(t, buf.String(), `"password":"`+Redaction+`"`)
}

// TestNewRedactedLogger_NotNil verifies the redacted constructor wires up a
// usable logger.
func TestNewRedactedLogger_NotNil(t *testing.T) {
	l := NewRedactedLogger("redacted-role", "password")
	require.NotNil(t, l)
}
