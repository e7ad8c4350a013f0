package params

import (
	"errors"
	"os/user"
	"strings"
)

type SSHParams struct {
	Port      int
	Insecure  bool
	LoginName string
	Password  string
	Host      string
}

type Params struct {
	LogLevel string
}

func GetSSHParams(c CLIContext) (p SSHParams, err error) {
	p.Host = strings.TrimSpace(c.SSHHost())
	if p.Host == "" {
		return p, errors.New("empty host")
	}
	spl := strings.SplitN(p.Host, "@", 2)
	if len(spl) == 2 {
		p.LoginName = spl[0]
		p.Host = spl[1]
	}
	if p.LoginName == "" {
		p.LoginName = strings.TrimSpace(c.SSHLogin())
		if p.LoginName == "" {
			u, err := user.Current()
			if err != nil {
				return p, err
			}
			p.LoginName = u.Username
		}
	}
	p.Password = c.SSHPassword()
	p.Insecure = c.SSHInsecure()
	p.Port = c.SSHPort()
	if p.Port == 0 {
		p.Port = 22
	}
	return p, nil
}
