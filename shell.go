package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/mitchellh/go-homedir"
	"github.com/peterh/liner"
	"github.com/stephane-martin/sftpsh/lib"
	"github.com/stephane-martin/sftpsh/params"
	"github.com/stephane-martin/sftpsh/sftpshell"
	"github.com/stephane-martin/sftpsh/sys"
	"github.com/stephane-martin/sftpsh/widgets"
	"github.com/urfave/cli"
)

func shellAction(clictx *cli.Context) (e error) {
	defer func() {
		if e != nil {
			e = cli.NewExitError(e.Error(), 1)
		}
	}()

	gparams := params.Params{
		LogLevel: strings.ToLower(strings.TrimSpace(clictx.GlobalString("loglevel"))),
	}
	logger, err := params.Logger(gparams.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c := params.NewCliContext(clictx)
	if c.SSHHost() == "" || c.SSHPassword() == "" {
		c, err = widgets.Form(c)
		if err != nil {
			return err
		}
	}
	sshParams, err := params.GetSSHParams(c)
	if err != nil {
		return err
	}

	fmt.Println("Connecting...")
	remote, err := lib.Dial(sshParams, logger)
	if err != nil {
		return err
	}
	defer func() { _ = remote.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sys.CancelOnSignal(cancel)
	go func() {
		// an interrupt during a blocking directory listing or transfer
		// unblocks the loop by tearing the session down
		<-ctx.Done()
		_ = remote.Close()
	}()

	state, err := sftpshell.NewShellState(
		remote,
		os.Stdout,
		func(f string, a ...interface{}) {
			fmt.Fprintln(os.Stderr, aurora.Blue("-> "+fmt.Sprintf(f, a...)))
		},
		func(f string, a ...interface{}) {
			fmt.Fprintln(os.Stderr, aurora.Red("===> "+fmt.Sprintf(f, a...)))
		},
	)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer func() { _ = line.Close() }()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabCircular)

	historyPath, err := homedir.Expand("~/.config/sftpsh/history")
	if err == nil {
		h, err := os.Open(historyPath)
		if err == nil {
			_, _ = line.ReadHistory(h)
			_ = h.Close()
		}
		defer func() {
			err := os.MkdirAll(filepath.Dir(historyPath), 0700)
			if err == nil {
				h, err := os.Create(historyPath)
				if err == nil {
					_, _ = line.WriteHistory(h)
					_ = h.Close()
				}
			}
		}()
	}

L:
	for !state.Closed() {
		select {
		case <-ctx.Done():
			break L
		default:
		}
		wd := state.RefreshWD()
		line.SetWordCompleter(sftpshell.NewCompleter(state.Words).Complete)
		l, err := line.Prompt(wd + " # ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			break L
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("Failed to read line: %s", err)))
			continue L
		}
		line.AppendHistory(l)
		err = state.Dispatch(l)
		if err == io.EOF {
			break L
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red("===> "+err.Error()))
			continue L
		}
	}
	return nil
}
