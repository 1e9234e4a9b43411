package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/keycase/codec"
	"github.com/erraggy/keycase/internal/testutil"
	"github.com/erraggy/keycase/keyerrors"
	"github.com/erraggy/keycase/multicase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupConvertFlags(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		_, flags := SetupConvertFlags()
		assert.Equal(t, "snake", flags.Case)
		assert.Empty(t, flags.Format)
		assert.Empty(t, flags.InputFormat)
		assert.Empty(t, flags.Output)
		assert.Equal(t, 2, flags.Indent)
		assert.False(t, flags.UserCase)
		assert.False(t, flags.Dump)
		assert.False(t, flags.Collisions)
		assert.Empty(t, flags.Log.Level)
	})

	t.Run("short flags", func(t *testing.T) {
		fs, flags := SetupConvertFlags()
		require.NoError(t, fs.Parse([]string{"-c", "camel", "-f", "yaml", "-o", "out.yaml", "in.json"}))
		assert.Equal(t, "camel", flags.Case)
		assert.Equal(t, "yaml", flags.Format)
		assert.Equal(t, "out.yaml", flags.Output)
		assert.Equal(t, "in.json", fs.Arg(0))
	})

	t.Run("long flags", func(t *testing.T) {
		fs, flags := SetupConvertFlags()
		args := []string{
			"--case", "kebab", "--format", "json", "--input-format", "yaml", "--output", "out.json",
			"--indent", "4", "--user-case", "--dump", "--collisions",
			"--log-level", "debug", "--log-backend", "logrus", "--log-format", "json", "--log-file", "/tmp",
			"in.yaml",
		}
		require.NoError(t, fs.Parse(args))
		assert.Equal(t, "kebab", flags.Case)
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "yaml", flags.InputFormat)
		assert.Equal(t, 4, flags.Indent)
		assert.True(t, flags.UserCase)
		assert.True(t, flags.Dump)
		assert.True(t, flags.Collisions)
		assert.Equal(t, LogFlags{Level: "debug", Backend: "logrus", Format: "json", Dir: "/tmp"}, flags.Log)
	})
}

func convert(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := runConvert(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunConvert_Stdin(t *testing.T) {
	stdout, _, err := convert(t, []string{"-"}, `{"UserInfo": {"FirstName": "Ann"}, "Tags": [{"TagName": "x"}, "plain"]}`)
	require.NoError(t, err)
	assert.Equal(t, `{
  "user_info": {
    "first_name": "Ann"
  },
  "tags": [
    {
      "tag_name": "x"
    },
    "plain"
  ]
}
`, stdout)
}

func TestRunConvert_Styles(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{style: "snake", want: `{"user_id":1}`},
		{style: "camel", want: `{"userId":1}`},
		{style: "PascalCase", want: `{"UserId":1}`},
		{style: "kebab-case", want: `{"user-id":1}`},
		{style: "CONSTANT", want: `{"USER_ID":1}`},
		{style: "title", want: `{"User Id":1}`},
		{style: "dot", want: `{"user.id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			stdout, _, err := convert(t, []string{"--case", tt.style, "--indent", "0", "-"}, `{"user_id": 1}`)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestRunConvert_FileFormats(t *testing.T) {
	path := testutil.WriteTempDocument(t, testutil.NewUserDocument(), codec.FormatYAML)

	t.Run("keeps input format", func(t *testing.T) {
		stdout, _, err := convert(t, []string{"--case", "camel", path}, "")
		require.NoError(t, err)

		back, err := codec.DecodeMap([]byte(stdout), codec.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, []string{"userInfo", "tags"}, back.Keys())
	})

	t.Run("msgpack output file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out.mpk")
		stdout, _, err := convert(t, []string{"--format", "msgpack", "-o", out, path}, "")
		require.NoError(t, err)
		assert.Empty(t, stdout)

		m, format, err := codec.DecodeFile(out, "")
		require.NoError(t, err)
		assert.Equal(t, codec.FormatMsgpack, format)
		assert.Equal(t, []string{"user_info", "tags"}, m.Keys())
	})

	t.Run("explicit input format", func(t *testing.T) {
		odd := testutil.WriteTempFile(t, "input.txt", []byte("someKey: 1\n"))
		stdout, _, err := convert(t, []string{"--input-format", "yml", "--format", "json", "--indent", "0", odd}, "")
		require.NoError(t, err)
		assert.Equal(t, "{\"some_key\":1}\n", stdout)
	})
}

func TestRunConvert_UserCase(t *testing.T) {
	stdout, _, err := convert(t, []string{"--user-case", "--indent", "0", "-"}, `{"fooBar": {"InnerKey": true}}`)
	require.NoError(t, err)
	assert.Equal(t, "{\"fooBar\":{\"InnerKey\":true}}\n", stdout)
}

func TestRunConvert_Collisions(t *testing.T) {
	input, err := codec.Encode(multicase.MapOf(
		multicase.Pair{Key: "fooBar", Value: multicase.ScalarOf(1)},
		multicase.Pair{Key: "foo_bar", Value: multicase.ScalarOf(2)},
		multicase.Pair{Key: "Nested", Value: multicase.List{testutil.NewCollidingDocument()}},
	), codec.FormatJSON)
	require.NoError(t, err)

	stdout, stderr, err := convert(t, []string{"--collisions", "--indent", "0", "-"}, string(input))
	require.NoError(t, err)
	assert.Equal(t, "{\"foo_bar\":1,\"nested\":[{\"foo_bar\":1}]}\n", stdout)
	assert.Contains(t, stderr, `collision at <root>: dropped "foo_bar", kept "fooBar"`)
	assert.Contains(t, stderr, `collision at nested[0]: dropped "foo_bar", kept "fooBar"`)
	assert.Contains(t, stderr, "2 collision(s)")
}

func TestRunConvert_Dump(t *testing.T) {
	_, stderr, err := convert(t, []string{"--dump", "-"}, `{"someKey": "v"}`)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Converted tree:")
	assert.Contains(t, stderr, `"some_key"`)
	assert.Contains(t, stderr, "Reverse key map:")
	assert.Contains(t, stderr, `"someKey"`)
}

func TestRunConvert_Logging(t *testing.T) {
	t.Setenv("KEYCASE_LOG_ENABLE", "")

	t.Run("stderr", func(t *testing.T) {
		_, stderr, err := convert(t, []string{"--log-level", "debug", "-"}, `{"a": 1}`)
		require.NoError(t, err)
		assert.Contains(t, stderr, "converted document")
		assert.Contains(t, stderr, "decode took")
	})

	t.Run("log file", func(t *testing.T) {
		dir := t.TempDir()
		_, stderr, err := convert(t, []string{"--log-level", "info", "--log-backend", "logrus", "--log-file", dir, "-"}, `{"a": 1}`)
		require.NoError(t, err)
		assert.NotContains(t, stderr, "converted document")

		entries, err := os.ReadDir(filepath.Join(dir, "logs"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		data, err := os.ReadFile(filepath.Join(dir, "logs", entries[0].Name()))
		require.NoError(t, err)
		assert.Contains(t, string(data), "converted document")
	})

	t.Run("disabled by default", func(t *testing.T) {
		_, stderr, err := convert(t, []string{"-"}, `{"a": 1}`)
		require.NoError(t, err)
		assert.Empty(t, stderr)
	})
}

func TestRunConvert_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stdin  string
		target error
		substr string
	}{
		{name: "no args", args: []string{}, substr: "requires exactly one file path"},
		{name: "bad case", args: []string{"--case", "sponge", "-"}, target: keyerrors.ErrConfig},
		{name: "bad format", args: []string{"--format", "toml", "-"}, target: keyerrors.ErrConfig},
		{name: "bad input format", args: []string{"--input-format", "ini", "-"}, target: keyerrors.ErrConfig},
		{name: "bad log level", args: []string{"--log-level", "loud", "-"}, target: keyerrors.ErrConfig},
		{name: "negative indent", args: []string{"--indent", "-1", "-"}, substr: "invalid indent"},
		{name: "invalid json", args: []string{"--input-format", "json", "-"}, stdin: `{"a":`, target: keyerrors.ErrParse},
		{name: "root not mapping", args: []string{"-"}, stdin: `[1, 2]`, target: keyerrors.ErrParse},
		{name: "missing file", args: []string{"does-not-exist.json"}, target: os.ErrNotExist},
		{name: "unknown flag", args: []string{"--nope", "-"}, substr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := convert(t, tt.args, tt.stdin)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.substr != "" {
				assert.Contains(t, err.Error(), tt.substr)
			}
		})
	}
}

func TestRunConvert_RefusesToOverwriteInput(t *testing.T) {
	path := testutil.WriteTempFile(t, "in.json", []byte(`{"a": 1}`))
	_, _, err := convert(t, []string{"-o", path, path}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestHandleConvert_Help(t *testing.T) {
	assert.NoError(t, HandleConvert([]string{"--help"}))
}
