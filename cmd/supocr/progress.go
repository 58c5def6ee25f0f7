package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// itemProgress draws a per-item bar for interactive conversions.
type itemProgress struct {
	bar *progressbar.ProgressBar
}

func newItemProgress(w io.Writer, total int, description string) *itemProgress {
	bar := progressbar.NewOptions(
		total,
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("subs"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &itemProgress{bar: bar}
}

// observe matches ocr.WithItemObserver.
func (p *itemProgress) observe(done, total int) {
	_ = p.bar.Set(done)
}

func (p *itemProgress) finish() {
	_ = p.bar.Finish()
}
