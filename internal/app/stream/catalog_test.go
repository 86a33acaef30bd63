package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opsdash/internal/app/errors"
)

func Test_DefaultCatalog_Valid(t *testing.T) {
	catalog := DefaultCatalog()

	assert.NoError(t, catalog.Validate())

	seen := map[Level]bool{}
	for _, tmpl := range catalog {
		seen[tmpl.Level] = true
	}

	for _, level := range Levels {
		assert.True(t, seen[level], "missing templates for %s", level)
	}
}

func Test_Catalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr error
	}{
		{name: "Empty", catalog: Catalog{}, wantErr: errors.ErrEmptyCatalog},
		{name: "Nil", catalog: nil, wantErr: errors.ErrEmptyCatalog},
		{name: "Bad level", catalog: Catalog{{Level: "DEBUG", Message: "x"}}, wantErr: errors.ErrInvalidLevel},
		{name: "Blank message", catalog: Catalog{{Level: LevelInfo, Message: "  "}}, wantErr: errors.ErrInvalidTemplate},
		{name: "Valid", catalog: Catalog{{Level: LevelWarn, Message: "slow"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_Template_Render(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		rng      *stubRandom
		want     string
	}{
		{
			name:     "No placeholders",
			template: Template{Level: LevelInfo, Message: "deployment finished"},
			rng:      newStubRandom(),
			want:     "deployment finished",
		},
		{
			name:     "Latency",
			template: Template{Level: LevelWarn, Message: "slow ({ms}ms)"},
			rng:      newStubRandom(100),
			want:     "slow (105ms)",
		},
		{
			name:     "Pod",
			template: Template{Level: LevelInfo, Message: "pod {pod} ready"},
			rng:      newStubRandom(2, 0x1a2b),
			want:     "pod payments-01a2b ready",
		},
		{
			name:     "Status by level",
			template: Template{Level: LevelWarn, Message: "status {status}"},
			rng:      newStubRandom(1),
			want:     "status 429",
		},
		{
			name:     "Trace",
			template: Template{Level: LevelError, Message: "trace={trace}"},
			rng:      newStubRandom(),
			want:     "trace=00000000-0000-4000-8000-000000000000",
		},
		{
			name:     "Unknown placeholder left untouched",
			template: Template{Level: LevelInfo, Message: "user {user} logged in"},
			rng:      newStubRandom(),
			want:     "user {user} logged in",
		},
		{
			name:     "Unterminated brace",
			template: Template{Level: LevelInfo, Message: "took {ms"},
			rng:      newStubRandom(),
			want:     "took {ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.template.Render(tt.rng))
		})
	}
}

func Test_Template_Render_TraceIsUUID(t *testing.T) {
	tmpl := Template{Level: LevelInfo, Message: "{trace}"}

	got := tmpl.Render(NewRandom(7))

	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, got)
}
