package sftpshell

import (
	"io"
	"time"

	"github.com/cheggaaa/pb"
)

// reporter feeds (received, total) transfer callbacks into a progress bar.
// One reporter is scoped to one download.
type reporter struct {
	bar *pb.ProgressBar
}

func newReporter(label string, out io.Writer) *reporter {
	bar := pb.New64(0).SetUnits(pb.U_BYTES).SetRefreshRate(time.Second).SetMaxWidth(72)
	bar.ShowElapsedTime = false
	bar.ShowFinalTime = false
	bar.ShowTimeLeft = false
	bar.Output = out
	bar.Prefix(label + " ")
	bar.Start()
	return &reporter{bar: bar}
}

// Update is invoked synchronously by the transfer as bytes arrive.
func (r *reporter) Update(received, total int64) {
	r.bar.SetTotal64(total)
	r.bar.Set64(received)
}

func (r *reporter) Close() {
	r.bar.Finish()
}
