// Package extract pulls ten-digit phone numbers out of loosely formatted CSV text.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/fancy-numbers/internal/model"
)

// maxLineSize bounds a single CSV row read by Reader.
const maxLineSize = 1 << 20

// Extract returns the numeric value of every cell that holds exactly ten digits
// once non-digit characters are removed, in row-major order. Duplicates are kept.
func Extract(text string) []uint64 {
	numbers := Numbers(text)
	out := make([]uint64, 0, len(numbers))
	for _, n := range numbers {
		v, err := n.Int()
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Numbers is Extract without the integer conversion, so leading zeros survive.
func Numbers(text string) []model.PhoneNumber {
	out := []model.PhoneNumber{}
	for _, line := range strings.Split(text, "\n") {
		out = appendLine(out, line)
	}
	return out
}

// Reader scans r one line at a time.
func Reader(r io.Reader) ([]model.PhoneNumber, error) {
	out := []model.PhoneNumber{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		out = appendLine(out, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read numbers: %w", err)
	}
	return out, nil
}

func appendLine(out []model.PhoneNumber, line string) []model.PhoneNumber {
	line = strings.TrimSuffix(line, "\r")
	for _, cell := range strings.Split(line, ",") {
		if n, err := model.ParsePhoneNumber(cell); err == nil {
			out = append(out, n)
		}
	}
	return out
}
