package dashboard

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func Test_highlightMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		query   string
	}{
		{name: "empty message", message: "", query: "x"},
		{name: "plain message", message: "deployment web-api rolled out", query: ""},
		{name: "trace id", message: "GET /v1/cart 200 trace=3f2b8c1e-9a4d-4e2f-8b6a-1c2d3e4f5a6b", query: ""},
		{name: "query match case-insensitive", message: "Timeout calling payments", query: "TIMEOUT"},
		{name: "query inside trace id", message: "trace=3f2b8c1e-9a4d-4e2f-8b6a-1c2d3e4f5a6b done", query: "9a4d"},
		{name: "regex characters in query", message: "GET /v1/cart (200)", query: "(200)"},
		{name: "multibyte text", message: "falha na conexão após 3000ms", query: "conexão"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := highlightMessage(tt.message, tt.query)

			assert.Equal(t, tt.message, ansi.Strip(result))
		})
	}
}

func Test_highlightMessage_NoQueryLeavesPlainTextUntouched(t *testing.T) {
	assert.Equal(t, "pod auth-svc-0a1b2 passed readiness probe", highlightMessage("pod auth-svc-0a1b2 passed readiness probe", "  "))
}
