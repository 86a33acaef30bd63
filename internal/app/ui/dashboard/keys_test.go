package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{name: "pause", keys: km.Pause.Keys(), want: []string{"p", " "}},
		{name: "clear", keys: km.Clear.Keys(), want: []string{"ctrl+r"}},
		{name: "cycle level", keys: km.CycleLevel.Keys(), want: []string{"l"}},
		{name: "levels", keys: append(append(append(km.LevelAll.Keys(), km.LevelInfo.Keys()...), km.LevelWarn.Keys()...), km.LevelError.Keys()...), want: []string{"1", "2", "3", "4"}},
		{name: "search", keys: km.Search.Keys(), want: []string{"/"}},
		{name: "autoscroll", keys: km.Autoscroll.Keys(), want: []string{"a"}},
		{name: "quit", keys: km.Quit.Keys(), want: []string{"q"}},
		{name: "force quit", keys: km.ForceQuit.Keys(), want: []string{"ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.keys)
		})
	}
}

func Test_KeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.ShortHelp(), km.Pause)
	assert.Contains(t, km.ShortHelp(), km.Quit)
	assert.Len(t, km.FullHelp(), 5)
}
