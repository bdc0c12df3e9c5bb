package wire

import (
	"bufio"
	"fmt"
	"io"
	"net/textproto"
	"sort"
	"strconv"

	"github.com/respio/respio"
	"github.com/respio/respio/log"
)

// DefaultChunkSize is the chunk payload size used for streaming bodies
// when Config does not override it.
const DefaultChunkSize = 4096

// Config adjusts how a response is serialized.
type Config struct {
	// ChunkSize caps the payload size of each chunk when the response
	// carries a streaming body. 0 means DefaultChunkSize.
	ChunkSize int
}

func (c Config) chunkSize() int {
	if c.ChunkSize > 0 {
		return c.ChunkSize
	}

	return DefaultChunkSize
}

// Write serializes res onto w as an HTTP/1.1 response: status line, one
// header line per stored value with keys in sorted order, a blank line,
// then the payload. Multi-valued headers, set-cookie in particular, are
// written as repeated lines and never joined into one.
//
// A response whose status was never set is written as 200 OK and a warning
// is logged. Buffered payloads get a content-length header when none is
// stored; streaming payloads are written with chunked transfer encoding.
func Write(w io.Writer, res respio.Response, cfg ...Config) error {
	var config Config
	if len(cfg) > 0 {
		config = cfg[0]
	}

	code := res.Status
	if code == 0 {
		log.WarnSkip(1, "response has no status code, writing 200")
		code = respio.StatusOK
	}

	bw := bufio.NewWriter(w)
	if phrase := respio.StatusText(code); phrase != "" {
		fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", code, phrase)
	} else {
		fmt.Fprintf(bw, "HTTP/1.1 %d\r\n", code)
	}

	headers := res.Headers.Clone()
	streaming := res.Stream != nil
	if streaming {
		if _, err := headers.Get("transfer-encoding"); err != nil {
			headers.Set("transfer-encoding", "chunked")
		}
	} else if _, err := headers.Get("content-length"); err != nil {
		headers.Set("content-length", strconv.Itoa(len(res.Body)))
	}

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		wireName := textproto.CanonicalMIMEHeaderKey(name)
		for _, value := range headers[name] {
			fmt.Fprintf(bw, "%s: %s\r\n", wireName, value)
		}
	}

	bw.WriteString("\r\n")

	if streaming {
		if err := writeChunked(bw, res.Stream, config.chunkSize()); err != nil {
			return err
		}
	} else if _, err := bw.Write(res.Body); err != nil {
		return err
	}

	return bw.Flush()
}
