package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"opsdash/internal/app/errors"
)

// Placeholders understood by Template.Render
const (
	PlaceholderTrace  = "trace"
	PlaceholderMillis = "ms"
	PlaceholderPod    = "pod"
	PlaceholderStatus = "status"
)

const (
	minLatencyMillis  = 5
	maxLatencyMillis  = 2000
	podSuffixSpace    = 0xfffff
	uuidByteSpace     = 256
	unknownTraceValue = "00000000-0000-0000-0000-000000000000"
)

var podNames = []string{"checkout-api", "auth-svc", "payments", "web-api", "ingress-nginx", "orders-worker"}

var statusCodes = map[Level][]int{
	LevelInfo:  {200, 201, 204},
	LevelWarn:  {408, 429},
	LevelError: {500, 502, 503, 504},
}

// Template is a message pattern the simulator picks from
type Template struct {
	Level   Level  `yaml:"level" json:"level"`
	Message string `yaml:"message" json:"message"`
}

// Catalog is the ordered set of templates available to the simulator
type Catalog []Template

// DefaultCatalog returns the built-in template set
func DefaultCatalog() Catalog {
	return Catalog{
		{Level: LevelInfo, Message: "GET /v1/cart {status} in {ms}ms trace={trace}"},
		{Level: LevelInfo, Message: "POST /v1/checkout {status} in {ms}ms trace={trace}"},
		{Level: LevelInfo, Message: "pod {pod} passed readiness probe"},
		{Level: LevelInfo, Message: "auth token refreshed for session trace={trace}"},
		{Level: LevelInfo, Message: "deployment web-api rolled out revision 42"},
		{Level: LevelWarn, Message: "upstream payments responded slowly ({ms}ms)"},
		{Level: LevelWarn, Message: "rate limit close to threshold on /v1/login ({status})"},
		{Level: LevelWarn, Message: "pod {pod} memory at 87% of limit"},
		{Level: LevelError, Message: "timeout calling payments gateway after {ms}ms trace={trace}"},
		{Level: LevelError, Message: "pod {pod} CrashLoopBackOff: exit code 137"},
		{Level: LevelError, Message: "POST /v1/orders {status} upstream connect error trace={trace}"},
	}
}

// Validate rejects empty catalogs and malformed templates
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return errors.ErrEmptyCatalog
	}

	for i, t := range c {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("template %d: %w", i, err)
		}
	}

	return nil
}

// Validate checks the template level and message
func (t Template) Validate() error {
	if _, err := ParseLevel(string(t.Level)); err != nil {
		return err
	}

	if strings.TrimSpace(t.Message) == "" {
		return fmt.Errorf("%w: message is empty", errors.ErrInvalidTemplate)
	}

	return nil
}

// Render expands placeholders in the message using rng, leaving unknown ones untouched
func (t Template) Render(rng Random) string {
	msg := t.Message

	var b strings.Builder

	for {
		start := strings.IndexByte(msg, '{')
		if start < 0 {
			b.WriteString(msg)
			break
		}

		end := strings.IndexByte(msg[start:], '}')
		if end < 0 {
			b.WriteString(msg)
			break
		}

		end += start

		b.WriteString(msg[:start])

		if value, ok := renderPlaceholder(msg[start+1:end], t.Level, rng); ok {
			b.WriteString(value)
		} else {
			b.WriteString(msg[start : end+1])
		}

		msg = msg[end+1:]
	}

	return b.String()
}

func renderPlaceholder(name string, level Level, rng Random) (string, bool) {
	switch name {
	case PlaceholderTrace:
		return renderTrace(rng), true
	case PlaceholderMillis:
		return strconv.Itoa(minLatencyMillis + rng.IntN(maxLatencyMillis-minLatencyMillis)), true
	case PlaceholderPod:
		return fmt.Sprintf("%s-%05x", podNames[rng.IntN(len(podNames))], rng.IntN(podSuffixSpace)), true
	case PlaceholderStatus:
		codes, ok := statusCodes[level]
		if !ok {
			codes = statusCodes[LevelInfo]
		}

		return strconv.Itoa(codes[rng.IntN(len(codes))]), true
	default:
		return "", false
	}
}

// renderTrace builds a v4 UUID from the injected random source
func renderTrace(rng Random) string {
	id, err := uuid.NewRandomFromReader(randomReader{rng: rng})
	if err != nil {
		return unknownTraceValue
	}

	return id.String()
}

// randomReader adapts Random to io.Reader
type randomReader struct {
	rng Random
}

func (r randomReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.IntN(uuidByteSpace))
	}

	return len(p), nil
}
