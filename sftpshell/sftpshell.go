package sftpshell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/scylladb/go-set/strset"
)

// RemoteFS is the remote session capability the shell operates on. All paths
// handed to it are absolute; relative argument resolution happens in the
// shell.
type RemoteFS interface {
	Getwd() (string, error)
	ReadDir() ([]os.FileInfo, error)
	ChangeDir(path string) error
	Download(remotePath, localPath string, progress func(received, total int64)) error
	Close() error
}

type command func(args []string, flags *strset.Set) error

type ShellState struct {
	RemoteWD string
	closed   bool
	remote   RemoteFS
	methods  map[string]command
	out      io.Writer
	info     func(string, ...interface{})
	err      func(string, ...interface{})
}

func NewShellState(remote RemoteFS, out io.Writer, infoFunc, errFunc func(string, ...interface{})) (*ShellState, error) {
	remoteWD, err := remote.Getwd()
	if err != nil {
		remoteWD = ""
	}
	s := &ShellState{
		RemoteWD: remoteWD,
		remote:   remote,
		out:      out,
		info:     infoFunc,
		err:      errFunc,
	}
	s.methods = map[string]command{
		"q":        s.exit,
		"quit":     s.exit,
		"exit":     s.exit,
		"ls":       s.ls,
		"ll":       s.ll,
		"pwd":      s.pwd,
		"cd":       s.cd,
		"get":      s.get,
		"download": s.get,
		"help":     s.help,
	}
	for name, fun := range s.methods {
		if fun == nil {
			return nil, fmt.Errorf("command without handler: %s", name)
		}
	}
	return s, nil
}

// Closed reports whether a quit command has been dispatched.
func (s *ShellState) Closed() bool {
	return s.closed
}

// RefreshWD re-reads the working directory from the remote session. A failing
// session leaves the displayed directory empty rather than stale.
func (s *ShellState) RefreshWD() string {
	wd, err := s.remote.Getwd()
	if err != nil {
		wd = ""
	}
	s.RemoteWD = wd
	return wd
}

// Dispatch parses one input line and runs the matching command. The first
// space separated word selects the command; the remainder goes through
// SplitArgs, so quoting and escaping only apply to arguments. io.EOF means a
// quit command; any other error is recoverable and the loop goes on.
func (s *ShellState) Dispatch(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	cmd := line
	var rest string
	if i := strings.Index(line, " "); i != -1 {
		cmd, rest = line[:i], line[i+1:]
	}
	args, err := SplitArgs(rest)
	if err != nil {
		return err
	}

	var posargs []string
	sflags := strset.New()
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			sflags.Add(strings.TrimLeft(arg, "-"))
		} else {
			posargs = append(posargs, arg)
		}
	}

	fun := s.methods[strings.ToLower(cmd)]
	if fun == nil {
		return errors.New("Unknown command")
	}
	return fun(posargs, sflags)
}

func (s *ShellState) exit(_ []string, _ *strset.Set) error {
	s.closed = true
	return io.EOF
}

func (s *ShellState) pwd(args []string, _ *strset.Set) error {
	if len(args) != 0 {
		return errors.New("pwd takes no argument")
	}
	fmt.Fprintln(s.out, s.RemoteWD)
	return nil
}

func (s *ShellState) cd(args []string, _ *strset.Set) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) > 1 {
		return errors.New("cd takes only one argument")
	}
	dirname := joinRemote(s.RemoteWD, args[0])
	if err := s.remote.ChangeDir(dirname); err != nil {
		return err
	}
	s.RefreshWD()
	return nil
}

func (s *ShellState) help(_ []string, _ *strset.Set) error {
	fmt.Fprintln(s.out, "ls           list the current remote directory")
	fmt.Fprintln(s.out, "ll           list with file sizes")
	fmt.Fprintln(s.out, "cd <dir>     change the remote directory")
	fmt.Fprintln(s.out, "pwd          print the remote directory")
	fmt.Fprintln(s.out, "get <file> [save_location]")
	fmt.Fprintln(s.out, "             download a remote file (alias: download)")
	fmt.Fprintln(s.out, "quit         leave the shell (aliases: q, exit)")
	return nil
}

// joinRemote composes an absolute remote path from the working directory and
// a user supplied argument. Dot segments are not normalized here, the server
// resolves them.
func joinRemote(wd, name string) string {
	if strings.HasPrefix(name, "/") {
		return name
	}
	return strings.TrimSuffix(wd, "/") + "/" + name
}

func base(name string) string {
	if i := strings.LastIndex(name, "/"); i != -1 {
		return name[i+1:]
	}
	return name
}

func sortEntries(entries []os.FileInfo) {
	rank := func(info os.FileInfo) int {
		if info.IsDir() {
			return 1
		}
		if info.Mode().IsRegular() {
			return 2
		}
		return 3
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := rank(entries[i]), rank(entries[j])
		if ri != rj {
			return ri < rj
		}
		return entries[i].Name() < entries[j].Name()
	})
}
