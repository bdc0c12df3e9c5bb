package wire

import (
	"bufio"
	"fmt"
	"io"
)

// writeChunked copies r onto w using chunked transfer encoding: the hex
// size of each chunk on its own line, the chunk bytes, a CRLF, and a
// zero-sized chunk terminating the stream.
func writeChunked(w *bufio.Writer, r io.Reader, size int) error {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			fmt.Fprintf(w, "%x\r\n", n)
			w.Write(buf[:n])
			if _, werr := w.WriteString("\r\n"); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("reading stream body: %w", err)
		}
	}

	_, err := w.WriteString("0\r\n\r\n")
	return err
}
