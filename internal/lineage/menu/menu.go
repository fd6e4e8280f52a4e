// Package menu runs the interactive report menu.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/lineage/internal/lineage/report"
)

// Commands accepted by the menu.
const (
	CommandTotal      = "T"
	CommandByDecade   = "D"
	CommandDuplicates = "N"
	CommandQuit       = "Q"
)

// Run prompts on p and reads single-letter commands from in until Q, end of
// input or ctx cancellation. Cancellation is treated like Q.
func Run(ctx context.Context, in io.Reader, p *report.Printer, people report.People) error {
	lines, readErr := readLines(ctx, in)
	for {
		p.Print(report.MenuPromptKey)

		var line string
		select {
		case <-ctx.Done():
			p.Println(report.MenuShutdownKey)
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("read menu choice: %w", err)
			}
			return nil
		case line = <-lines:
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case CommandTotal:
			p.Total(people)
		case CommandByDecade:
			p.ByDecade(people)
		case CommandDuplicates:
			p.Duplicates(people)
		case CommandQuit:
			p.Println(report.MenuShutdownKey)
			return nil
		default:
			p.Println(report.MenuInvalidKey)
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The error channel receives once, after the last line.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}
