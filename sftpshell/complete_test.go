package sftpshell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleterCachesPerTokenCount(t *testing.T) {
	calls := 0
	source := func(line string) []string {
		calls++
		return []string{"ls", "cd", "get", "quit"}
	}
	c := NewCompleter(source)

	c.Complete("l", 1)
	assert.Equal(t, 1, calls)

	// same token count: cached list, no second query
	c.Complete("ls", 2)
	assert.Equal(t, 1, calls)

	// token count changed: recompute
	c.Complete("ls ", 3)
	assert.Equal(t, 2, calls)

	c.Complete("ls a", 4)
	assert.Equal(t, 2, calls)
}

func TestCompleterSubstringMatch(t *testing.T) {
	source := func(line string) []string {
		return []string{"notes.txt", "Report.pdf", "archive.tar"}
	}
	c := NewCompleter(source)

	head, props, tail := c.Complete("get port", 8)
	assert.Equal(t, "get ", head)
	assert.Equal(t, []string{"Report.pdf"}, props)
	assert.Equal(t, "", tail)
}

func TestCompleterEmptyWordMatchesEverything(t *testing.T) {
	source := func(line string) []string {
		return []string{"a", "b"}
	}
	c := NewCompleter(source)
	_, props, _ := c.Complete("get ", 4)
	assert.Equal(t, []string{"a", "b"}, props)
}

func TestCompleterMultibyteRunes(t *testing.T) {
	source := func(line string) []string {
		return []string{"étude", "naïve.txt"}
	}

	// cursor at the end: pos is the rune count, not the byte length
	c := NewCompleter(source)
	head, props, tail := c.Complete("cd é", 4)
	assert.Equal(t, "cd ", head)
	assert.Equal(t, []string{"étude"}, props)
	assert.Equal(t, "", tail)

	// cursor in the middle of a line containing multibyte runes
	c = NewCompleter(source)
	head, props, tail = c.Complete("get naï x", 7)
	assert.Equal(t, "get ", head)
	assert.Equal(t, []string{"naïve.txt"}, props)
	assert.Equal(t, " x", tail)
}

func TestCompleterKeepsTail(t *testing.T) {
	source := func(line string) []string {
		return []string{"cd"}
	}
	c := NewCompleter(source)
	head, props, tail := c.Complete("c rest", 1)
	assert.Equal(t, "", head)
	assert.Equal(t, []string{"cd"}, props)
	assert.Equal(t, " rest", tail)
}

func TestWordsFirstToken(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, _ := newTestShell(t, remote)
	words := state.Words("l")
	assert.Contains(t, words, "ls")
	assert.Contains(t, words, "quit")
	assert.Contains(t, words, "get")
	assert.Contains(t, words, "download")
	assert.Contains(t, words, "exit")
	assert.Equal(t, 0, remote.readDirCalls)
}

func TestWordsCdListsDirectories(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, _ := newTestShell(t, remote)
	remote.entries = append(remote.entries, dir("docs"), file("a.txt", 1), dir("my dir"))

	words := state.Words("cd d")
	require.Equal(t, []string{"docs", `"my dir"`}, words)
}

func TestWordsGetListsRegularFiles(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, _ := newTestShell(t, remote)
	remote.entries = append(remote.entries, dir("docs"), file("a.txt", 1), file("my file.txt", 2))

	for _, line := range []string{"get ", "download "} {
		words := state.Words(line + "x")
		require.Equal(t, []string{"a.txt", `"my file.txt"`}, words, line)
	}
}

func TestWordsThirdTokenIsEmpty(t *testing.T) {
	remote := &fakeRemote{wd: "/home/u"}
	state, _ := newTestShell(t, remote)
	remote.entries = append(remote.entries, file("a.txt", 1))
	assert.Nil(t, state.Words("get a.txt "))
	assert.Nil(t, state.Words("ls x"))
}
