package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/multicase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStyles(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runStyles(nil, &stdout, &stderr))

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 8)
		assert.Equal(t, "Style     Example", lines[0])
		assert.Equal(t, "snake     user_account_id", lines[1])
		assert.Equal(t, "camel     userAccountID", lines[2])
		assert.Equal(t, "constant  USER_ACCOUNT_ID", lines[5])
	})

	t.Run("quiet with example", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runStyles([]string{"-q", "--example", "some-key"}, &stdout, &stderr))
		assert.True(t, strings.HasPrefix(stdout.String(), "snake\tsome_key\ncamel\tsomeKey\n"), stdout.String())
	})

	t.Run("json", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, runStyles([]string{"--format", "json"}, &stdout, &stderr))

		v, err := codec.Decode(stdout.Bytes(), codec.FormatJSON)
		require.NoError(t, err)
		list, ok := v.(multicase.List)
		require.True(t, ok)
		require.Len(t, list, 7)
		assert.Equal(t, map[string]any{"style": "kebab", "example": "user-account-id"}, multicase.ToGo(list[3]))
	})

	t.Run("invalid format", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := runStyles([]string{"--format", "xml"}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Valid formats")
	})

	t.Run("extra argument", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Error(t, runStyles([]string{"extra"}, &stdout, &stderr))
	})
}
