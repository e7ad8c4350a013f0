package sftpshell

import (
	"errors"

	"github.com/scylladb/go-set/strset"
)

var errGetUsage = errors.New(`invalid command format, use "get <file> [save_location]"`)

func (s *ShellState) get(args []string, _ *strset.Set) error {
	if len(args) < 1 || len(args) > 2 {
		return errGetUsage
	}
	fname := args[0]
	if fname == "" {
		return errGetUsage
	}
	savePath := "./" + fname
	if len(args) == 2 {
		savePath = args[1]
	}
	return s.download(fname, savePath)
}

// download transfers one remote file. The progress bar lives exactly as long
// as the transfer, including on error.
func (s *ShellState) download(fname, savePath string) error {
	remotePath := joinRemote(s.RemoteWD, fname)
	reporter := newReporter(base(fname), s.out)
	defer reporter.Close()
	return s.remote.Download(remotePath, savePath, reporter.Update)
}
