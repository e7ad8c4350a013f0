package sftpshell

import (
	"strings"
)

// WordSource returns the completion candidates appropriate to the current
// line. The shell state implements it: command names for the first word,
// remote directory entries for the argument of cd/get.
type WordSource func(line string) []string

// Completer adapts a WordSource to liner's word completion. One Completer is
// created per prompt. The candidate list is recomputed only when the number of
// space separated words on the line changes, since that number tells which
// argument position is being typed; within the same position the cached list
// is reused, so a large remote directory is listed once, not per keystroke.
type Completer struct {
	words     WordSource
	lastCount int
	cache     []string
}

func NewCompleter(words WordSource) *Completer {
	return &Completer{words: words, lastCount: -1}
}

// Complete implements liner.WordCompleter. liner edits the line as a rune
// slice and pos is a rune index, so the head/tail split must not count bytes.
func (c *Completer) Complete(line string, pos int) (string, []string, string) {
	runes := []rune(line)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	head := string(runes[:pos])
	tail := string(runes[pos:])

	count := len(strings.Split(line, " "))
	if count != c.lastCount {
		c.cache = c.words(line)
		c.lastCount = count
	}

	i := strings.LastIndex(head, " ")
	word := head[i+1:]
	head = head[:i+1]

	lword := strings.ToLower(word)
	var props []string
	for _, cand := range c.cache {
		if strings.Contains(strings.ToLower(cand), lword) {
			props = append(props, cand)
		}
	}
	return head, props, tail
}

var commandWords = []string{"cd", "download", "exit", "get", "help", "ll", "ls", "pwd", "q", "quit"}

// Words is the WordSource wired into the prompt completer.
func (s *ShellState) Words(line string) []string {
	words := strings.Split(line, " ")
	if len(words) == 1 {
		return commandWords
	}
	if len(words) == 2 {
		switch words[0] {
		case "cd":
			return s.entryNames(onlyDirs)
		case "get", "download":
			return s.entryNames(onlyFiles)
		}
	}
	return nil
}

func (s *ShellState) entryNames(o only) []string {
	entries, err := s.remote.ReadDir()
	if err != nil {
		return nil
	}
	props := make([]string, 0, len(entries))
	for _, info := range entries {
		if o == onlyDirs && !info.IsDir() {
			continue
		}
		if o == onlyFiles && !info.Mode().IsRegular() {
			continue
		}
		props = append(props, quoteName(info.Name()))
	}
	return props
}

func quoteName(name string) string {
	if strings.Contains(name, " ") {
		return `"` + name + `"`
	}
	return name
}

type only int

const (
	onlyFiles only = iota
	onlyDirs
)
