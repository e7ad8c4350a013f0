package sftpshell

import (
	"fmt"
	"os"

	"github.com/scylladb/go-set/strset"
)

const (
	dirMarker     = "📁"
	fileMarker    = "📄"
	unknownMarker = "?"
)

func marker(info os.FileInfo) string {
	if info.IsDir() {
		return dirMarker
	}
	if info.Mode().IsRegular() {
		return fileMarker
	}
	return unknownMarker
}

// ls lists the current remote directory, directories first, then regular
// files, then everything else, each group sorted by name. The -l flag adds
// file sizes.
func (s *ShellState) ls(args []string, flags *strset.Set) error {
	if len(args) != 0 {
		return fmt.Errorf("ls takes no argument")
	}
	entries, err := s.remote.ReadDir()
	if err != nil {
		return err
	}
	sortEntries(entries)
	long := flags.Has("l")
	for _, info := range entries {
		if long {
			fmt.Fprintf(s.out, "%s %10s %s\n", marker(info), formatSize(info.Size()), info.Name())
		} else {
			fmt.Fprintf(s.out, "%s %s\n", marker(info), info.Name())
		}
	}
	return nil
}

func (s *ShellState) ll(args []string, flags *strset.Set) error {
	flags.Add("l")
	return s.ls(args, flags)
}

var sizeUnits = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

func formatSize(size int64) string {
	num := float64(size)
	for _, unit := range sizeUnits {
		if num < 1024.0 && num > -1024.0 {
			return fmt.Sprintf("%3.1f %sB", num, unit)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1f YiB", num)
}
