package clipboard_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"baseconv/internal/clipboard"
)

func TestOSC52_WritesEscapeSequence(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, clipboard.OSC52{W: &buf}.WriteText(context.Background(), "FF"))
	require.Equal(t, "\x1b]52;c;RkY=\a", buf.String())
}

func TestFile_WritesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.txt")
	require.NoError(t, clipboard.File{Path: path}.WriteText(context.Background(), "1010"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1010\n", string(b))
}

func TestNew_Specs(t *testing.T) {
	var buf bytes.Buffer

	c, err := clipboard.New("", &buf)
	require.NoError(t, err)
	require.IsType(t, clipboard.OSC52{}, c)

	c, err = clipboard.New("stdout", &buf)
	require.NoError(t, err)
	require.NoError(t, c.WriteText(context.Background(), "255"))
	require.Equal(t, "255\n", buf.String())

	c, err = clipboard.New("memory", &buf)
	require.NoError(t, err)
	require.NoError(t, c.WriteText(context.Background(), "77"))
	require.Equal(t, "77", c.(*clipboard.Memory).Text())

	c, err = clipboard.New("file:/tmp/x", &buf)
	require.NoError(t, err)
	require.Equal(t, clipboard.File{Path: "/tmp/x"}, c)

	_, err = clipboard.New("file:", &buf)
	require.Error(t, err)
	_, err = clipboard.New("xclip", &buf)
	require.Error(t, err)
}
