package main

import (
	"io"
	"os"

	"github.com/cheggaaa/pb"
)

// withProgress returns a reader over f that draws a byte progress bar on w,
// and the function that finishes the bar. When disabled, f is returned as is.
func withProgress(f *os.File, enabled bool, w io.Writer) (io.Reader, func()) {
	if !enabled {
		return f, func() {}
	}
	var total int64
	if info, err := f.Stat(); err == nil {
		total = info.Size()
	}
	bar := pb.New64(total).SetUnits(pb.U_BYTES)
	bar.Output = w
	bar.ShowSpeed = true
	bar.Start()
	return bar.NewProxyReader(f), bar.Finish
}
