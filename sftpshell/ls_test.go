package sftpshell

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLsOrdering(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, out := newTestShell(t, remote)
	remote.entries = append(remote.entries, dir("b"), file("a", 10), dir("a"))

	require.NoError(t, state.Dispatch("ls"))
	assert.Equal(t, "📁 a\n📁 b\n📄 a\n", out.String())
}

func TestLsMarkers(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, out := newTestShell(t, remote)
	remote.entries = append(remote.entries,
		dir("docs"),
		file("a.txt", 10),
		fakeEntry{name: "sock", mode: os.ModeSocket},
	)

	require.NoError(t, state.Dispatch("ls"))
	assert.Equal(t, "📁 docs\n📄 a.txt\n? sock\n", out.String())
}

func TestLsTakesNoArgument(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, _ := newTestShell(t, remote)
	assert.Error(t, state.Dispatch("ls foo"))
}

func TestLlShowsSizes(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, out := newTestShell(t, remote)
	remote.entries = append(remote.entries, file("a.txt", 2048))

	require.NoError(t, state.Dispatch("ll"))
	assert.Contains(t, out.String(), "2.0 KiB")
	assert.Contains(t, out.String(), "a.txt")
}

func TestLsLongFlag(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, out := newTestShell(t, remote)
	remote.entries = append(remote.entries, file("a.txt", 512))

	require.NoError(t, state.Dispatch("ls -l"))
	assert.Contains(t, out.String(), "512.0 B")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0.0 B", formatSize(0))
	assert.Equal(t, "512.0 B", formatSize(512))
	assert.Equal(t, "1.0 KiB", formatSize(1024))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
	assert.Equal(t, "1.0 MiB", formatSize(1024*1024))
	assert.Equal(t, "2.5 GiB", formatSize(int64(2.5*1024*1024*1024)))
}

func TestPwd(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, out := newTestShell(t, remote)
	require.NoError(t, state.Dispatch("pwd"))
	assert.Equal(t, "/home/u\n", out.String())
	assert.Error(t, state.Dispatch("pwd extra"))
}
