package main

import (
	"os"

	"github.com/stephane-martin/sftpsh/sys"
)

// version stores the current version number of sftpsh. It is set by the Makefile.
var version string

func main() {
	app := App()
	sys.StartAgent()
	_ = app.Run(os.Args)
	sys.StopAgent()
	_ = os.Stdout.Sync()
	_ = os.Stderr.Sync()
}
