package cli

import (
	"fmt"
	"io"

	"github.com/Veraticus/fancy-numbers/internal/classification"
	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/schollz/progressbar/v3"
)

// NewProgress returns a categorizer observer that draws a progress bar on w.
func NewProgress(w io.Writer, total int, description string) classification.Observer {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(0),
		progressbar.OptionSetDescription("[yellow][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				common.LogError(err, "Failed to write newline after progress bar", nil)
			}
		}),
	)

	return func(done, _ int) {
		if err := bar.Set(done); err != nil {
			common.LogError(err, "Failed to update progress bar", common.Fields{"done": done})
		}
	}
}
