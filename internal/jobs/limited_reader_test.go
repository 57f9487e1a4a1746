package jobs

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		limit   int64
		wantErr bool
	}{
		{name: "below limit", input: "abc", limit: 5},
		{name: "exactly at limit", input: "abcde", limit: 5},
		{name: "one byte over", input: "abcdef", limit: 5, wantErr: true},
		{name: "far over", input: strings.Repeat("x", 10000), limit: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &limitedReader{r: strings.NewReader(tt.input), limit: tt.limit}
			data, err := io.ReadAll(r)
			if tt.wantErr {
				require.ErrorIs(t, err, errUploadTooLarge)
				assert.LessOrEqual(t, r.read, tt.limit+1)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(data))
			assert.Equal(t, int64(len(tt.input)), r.read)
		})
	}
}
