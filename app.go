package main

import (
	"github.com/urfave/cli"
)

// App returns the sftpsh application object.
func App() *cli.App {
	app := cli.NewApp()
	app.Name = "sftpsh"
	app.Usage = "interactive shell to browse and download files over SFTP"
	app.UsageText = "sftpsh [options] [host [username [password]]]"
	app.Version = version
	app.Flags = GlobalFlags()
	app.Action = shellAction
	return app
}

// GlobalFlags returns the global flags for sftpsh.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:   "ssh-port,sshport,P",
			Usage:  "SSH remote port",
			EnvVar: "SSH_PORT",
			Value:  22,
		},
		cli.BoolFlag{
			Name:   "insecure",
			Usage:  "do not check the remote SSH host key",
			EnvVar: "SSH_INSECURE",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Usage: "logging level",
			Value: "info",
		},
	}
}
