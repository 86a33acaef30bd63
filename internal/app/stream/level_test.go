package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdash/internal/app/errors"
)

func Test_ParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "Upper case", input: "INFO", want: LevelInfo},
		{name: "Lower case", input: "warn", want: LevelWarn},
		{name: "Surrounding spaces", input: "  Error ", want: LevelError},
		{name: "ALL is not a level", input: "ALL", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Unknown", input: "DEBUG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidLevel))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_ParseLevelFilter(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    LevelFilter
		wantErr bool
	}{
		{name: "Empty means all", input: "", want: FilterAll},
		{name: "All", input: "all", want: FilterAll},
		{name: "Warn", input: " WARN", want: FilterWarn},
		{name: "Error", input: "error", want: FilterError},
		{name: "Unknown", input: "fatal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevelFilter(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrInvalidLevelFilter))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_LevelFilter_Accepts(t *testing.T) {
	assert.True(t, FilterAll.Accepts(LevelInfo))
	assert.True(t, FilterAll.Accepts(LevelError))
	assert.True(t, LevelFilter("").Accepts(LevelWarn))
	assert.True(t, FilterWarn.Accepts(LevelWarn))
	assert.False(t, FilterWarn.Accepts(LevelInfo))
	assert.False(t, FilterError.Accepts(LevelWarn))
}

func Test_LevelFilter_Next(t *testing.T) {
	assert.Equal(t, FilterInfo, FilterAll.Next())
	assert.Equal(t, FilterWarn, FilterInfo.Next())
	assert.Equal(t, FilterError, FilterWarn.Next())
	assert.Equal(t, FilterAll, FilterError.Next())
	assert.Equal(t, FilterAll, LevelFilter("bogus").Next())
}

func Test_LevelFilter_String(t *testing.T) {
	assert.Equal(t, "ALL", LevelFilter("").String())
	assert.Equal(t, "WARN", FilterWarn.String())
}
