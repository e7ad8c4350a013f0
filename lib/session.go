package lib

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/pkg/sftp"
	gssh "github.com/stephane-martin/golang-ssh"
	"github.com/stephane-martin/sftpsh/params"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
)

// Session is the remote file system capability backing the shell: one SFTP
// client plus the current remote directory. pkg/sftp has no directory state
// of its own, so the working directory is tracked here and composed into the
// paths sent to the server.
type Session struct {
	client    *sftp.Client
	wd        string
	logger    *zap.SugaredLogger
	closer    func() error
	closeOnce sync.Once
	closeErr  error
}

// Dial connects and authenticates to the remote host and opens the SFTP
// subsystem. Password and keyboard-interactive authentication are attempted
// in that order.
func Dial(sshParams params.SSHParams, logger *zap.SugaredLogger) (*Session, error) {
	answer := func(user, instruction string, questions []string, echos []bool) ([]string, error) {
		answers := make([]string, len(questions))
		for i := range questions {
			answers[i] = sshParams.Password
		}
		return answers, nil
	}
	cfg := gssh.Config{
		User: sshParams.LoginName,
		Host: sshParams.Host,
		Port: sshParams.Port,
		Auth: []ssh.AuthMethod{
			ssh.Password(sshParams.Password),
			ssh.KeyboardInteractive(answer),
		},
	}
	hkcb, err := gssh.MakeHostKeyCallback(sshParams.Insecure, logger)
	if err != nil {
		return nil, err
	}
	cfg.HostKey = hkcb

	client, err := gssh.SFTP(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debugw("connected", "host", sshParams.Host, "port", sshParams.Port, "user", sshParams.LoginName)

	wd, err := client.Getwd()
	if err != nil {
		logger.Debugw("failed to read initial remote directory", "error", err)
		wd = ""
	}
	return &Session{client: client, wd: wd, logger: logger, closer: client.Close}, nil
}

func (s *Session) Getwd() (string, error) {
	return s.wd, nil
}

func (s *Session) ReadDir() ([]os.FileInfo, error) {
	return s.client.ReadDir(s.wd)
}

// ChangeDir moves the session to path. The server canonicalizes the path; a
// failure leaves the current directory untouched.
func (s *Session) ChangeDir(path string) error {
	canonical, err := s.client.RealPath(path)
	if err != nil {
		return err
	}
	stats, err := s.client.Stat(canonical)
	if err != nil {
		return err
	}
	if !stats.IsDir() {
		return errors.New("not a directory: " + path)
	}
	s.wd = canonical
	return nil
}

// Download copies the remote file at remotePath to localPath. The progress
// callback is invoked synchronously from the copy loop with the cumulative
// byte count and the total size.
func (s *Session) Download(remotePath, localPath string, progress func(received, total int64)) error {
	source, err := s.client.Open(remotePath)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()
	stats, err := source.Stat()
	if err != nil {
		return err
	}

	dest, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer func() { _ = dest.Close() }()

	s.logger.Debugw("download", "remote", remotePath, "local", localPath, "size", stats.Size())
	reader := &progressReader{reader: source, total: stats.Size(), progress: progress}
	if _, err := io.Copy(dest, reader); err != nil {
		return err
	}
	return dest.Close()
}

// Close releases the SFTP client. It is safe to call more than once: the
// underlying close runs exactly once, later calls return the same result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.closer()
	})
	return s.closeErr
}

type progressReader struct {
	reader   io.Reader
	received int64
	total    int64
	progress func(received, total int64)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.received += int64(n)
		if r.progress != nil {
			r.progress(r.received, r.total)
		}
	}
	return n, err
}
