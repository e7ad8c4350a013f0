package sys

import (
	"os"

	"github.com/google/gops/agent"
)

var gopsEnabled bool

// StartAgent starts the gops diagnostics agent when SFTPSH_GOPS is set in the
// environment. The shell runs without it otherwise.
func StartAgent() {
	if _, ok := os.LookupEnv("SFTPSH_GOPS"); !ok {
		return
	}
	if err := agent.Listen(agent.Options{}); err == nil {
		gopsEnabled = true
	}
}

// StopAgent shuts the agent down if StartAgent brought it up.
func StopAgent() {
	if gopsEnabled {
		agent.Close()
	}
}
