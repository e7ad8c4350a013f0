package params

import "github.com/urfave/cli"

// CLIContext abstracts where the connection parameters come from: either the
// command line arguments or the interactive connection form.
type CLIContext interface {
	SSHHost() string
	SSHLogin() string
	SSHPassword() string
	SSHPort() int
	SSHInsecure() bool
}

func NewCliContext(ctx *cli.Context) CLIContext {
	return cliContext{ctx: ctx}
}

type cliContext struct {
	ctx *cli.Context
}

func (c cliContext) SSHHost() string {
	if len(c.ctx.Args()) == 0 {
		return ""
	}
	return c.ctx.Args()[0]
}

func (c cliContext) SSHLogin() string {
	if len(c.ctx.Args()) < 2 {
		return ""
	}
	return c.ctx.Args()[1]
}

func (c cliContext) SSHPassword() string {
	if len(c.ctx.Args()) < 3 {
		return ""
	}
	return c.ctx.Args()[2]
}

func (c cliContext) SSHPort() int {
	return c.ctx.GlobalInt("ssh-port")
}

func (c cliContext) SSHInsecure() bool {
	return c.ctx.GlobalBool("insecure")
}
