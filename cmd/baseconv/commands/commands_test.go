package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"baseconv/internal/domain"
	"baseconv/internal/services/converter"
	"baseconv/internal/web"
)

// run executes the CLI with a temp home and in-memory clipboard unless args
// override them, returning stdout.
func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home, "--clipboard", "memory", "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "convert", "FF", "--from", "hex", "--to", "dec")
	require.NoError(t, err)
	require.Equal(t, "255\n", out)

	out, err = run(t, home, "convert", "255")
	require.NoError(t, err)
	require.Equal(t, "FF\n", out)

	out, err = run(t, home, "convert", "1010", "-f", "2", "-t", "10")
	require.NoError(t, err)
	require.Equal(t, "10\n", out)
}

func TestConvertCmd_InvalidNumber(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "convert", "", "--from", "dec", "--to", "hex")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid number")

	out, err := run(t, home, "convert", "zz", "--sentinel")
	require.NoError(t, err)
	require.Equal(t, "Error\n", out)

	_, err = run(t, home, "convert", "1", "--from", "base3")
	require.Error(t, err)
}

func TestValidateCmd(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "validate", "101", "--base", "bin")
	require.NoError(t, err)
	require.Equal(t, "valid Binary\n", out)

	out, err = run(t, home, "validate", "102", "-b", "bin")
	require.NoError(t, err)
	require.Equal(t, "invalid Binary: unexpected '2' at offset 2\n", out)
}

func TestBasesCmd(t *testing.T) {
	out, err := run(t, t.TempDir(), "bases")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[1], "bin"))
	require.Contains(t, lines[3], "Hexadecimal")
}

func TestWidgetCmds_SetRunSwapCopy(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "state")
	require.NoError(t, err)
	require.Contains(t, out, "Value:   (Enter decimal value)")

	out, err = run(t, home, "set", "255", "--to", "bin")
	require.NoError(t, err)
	require.Contains(t, out, "Decimal: 255")

	out, err = run(t, home, "run")
	require.NoError(t, err)
	require.Equal(t, "11111111\n", out)

	out, err = run(t, home, "swap")
	require.NoError(t, err)
	require.Contains(t, out, "From:    Binary")
	require.Contains(t, out, "Value:   11111111")
	require.Contains(t, out, "Result:  255")

	clip := filepath.Join(t.TempDir(), "clip.txt")
	_, err = run(t, home, "--clipboard", "file:"+clip, "copy")
	require.NoError(t, err)
	b, err := os.ReadFile(clip)
	require.NoError(t, err)
	require.Equal(t, "255\n", string(b))
}

func TestRunCmd_ErrorSentinelAndEmpty(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "run")
	require.Error(t, err)

	_, err = run(t, home, "set", "12z")
	require.NoError(t, err)
	out, err := run(t, home, "run")
	require.NoError(t, err)
	require.Equal(t, "C\n", out)

	_, err = run(t, home, "set", "z")
	require.NoError(t, err)
	out, err = run(t, home, "run")
	require.NoError(t, err)
	require.Equal(t, "Error\n", out)
}

func TestCopyCmd_NothingToCopy(t *testing.T) {
	_, err := run(t, t.TempDir(), "copy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nothing to copy")
}

func TestRemote(t *testing.T) {
	srv := httptest.NewServer(web.NewServer(converter.New(), nil).Handler())
	t.Cleanup(srv.Close)
	home := t.TempDir()

	out, err := run(t, home, "--remote", srv.URL, "convert", "777", "-f", "oct", "-t", "dec")
	require.NoError(t, err)
	require.Equal(t, "511\n", out)

	out, err = run(t, home, "--remote", srv.URL, "convert", "", "--sentinel")
	require.NoError(t, err)
	require.Equal(t, "Error\n", out)

	out, err = run(t, home, "--remote", srv.URL, "validate", "7g", "-b", "hex")
	require.NoError(t, err)
	require.Contains(t, out, "offset 1")
}

func TestRemote_ValidateBadOffset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":"7g","base":"hex","valid":false,"first_invalid":9}`))
	}))
	t.Cleanup(srv.Close)

	out, err := run(t, t.TempDir(), "--remote", srv.URL, "validate", "7g", "-b", "hex")
	require.NoError(t, err)
	require.Equal(t, "invalid Hexadecimal: unexpected input at offset 9\n", out)
}

func TestDescribeInvalid(t *testing.T) {
	tests := []struct {
		name string
		v    domain.Validation
		want string
	}{
		{"in range", domain.Validation{Value: "1é", FirstInvalid: 1}, `invalid Binary: unexpected 'é' at offset 1`},
		{"past end", domain.Validation{Value: "12", FirstInvalid: 2}, "invalid Binary: unexpected input at offset 2"},
		{"negative", domain.Validation{Value: "12", FirstInvalid: -1}, "invalid Binary: unexpected input at offset -1"},
		{"empty", domain.Validation{FirstInvalid: 0}, "invalid Binary: unexpected input at offset 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, describeInvalid(tt.v, domain.Binary))
		})
	}
}

func TestSetCmd_OutOfRange(t *testing.T) {
	out, err := run(t, t.TempDir(), "set", "FFFFFFFFFFFFFFFFFF", "-f", "hex")
	require.NoError(t, err)
	require.Contains(t, out, "Decimal: (out of range)")
}
