package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "parent and name", path: "a/b/c.sav", want: "b/c.sav"},
		{name: "bare name", path: "c.sav", want: "c.sav"},
		{name: "dot prefix", path: "./c.sav", want: "c.sav"},
		{name: "root parent", path: "/c.sav", want: "c.sav"},
		{name: "absolute", path: "/saves/0/game_data.sav", want: "0/game_data.sav"},
		{name: "unclean", path: "saves//0/./option.sav", want: "0/option.sav"},
		{name: "invalid parent", path: "saves/\xff/option.sav", want: "option.sav"},
		{name: "nfc", path: "slot/cafe\u0301.sav", want: "slot/caf\u00e9.sav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShortPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortPathUndisplayable(t *testing.T) {
	for _, path := range []string{"", "/", ".", "..", "dir/\xff.sav"} {
		_, err := ShortPath(path)
		assert.ErrorIs(t, err, ErrUndisplayablePath, "path %q", path)
	}
}
