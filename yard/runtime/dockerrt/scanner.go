package dockerrt

import (
	"bufio"
	"io"
)

// maxLineBuffer bounds how much of a single output line is held before it
// is flushed. Longer lines are split at the boundary rather than buffered
// without bound; no bytes are dropped.
const maxLineBuffer = 16 * 1024

// copyLines reads r and performs one newline-terminated Write to w per
// line, or per maxLineBuffer-sized chunk of an oversized line. A trailing
// line with no newline is still delivered, so a cleanly closed stream
// loses nothing.
func copyLines(w io.Writer, r io.Reader) error {
	reader := bufio.NewReaderSize(r, maxLineBuffer)

	for {
		line, _, err := reader.ReadLine()

		if err == nil || len(line) > 0 {
			out := make([]byte, len(line)+1)
			copy(out, line)
			out[len(line)] = '\n'

			if _, werr := w.Write(out); werr != nil {
				return werr
			}
		}

		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
