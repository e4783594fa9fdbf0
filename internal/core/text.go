package core

// text.go turns raw source bytes into text the ingestor can use.
//
// Spreadsheet exports from Windows tools often start with a UTF-8 BOM and
// occasionally carry stray Latin-1 bytes. The BOM would otherwise become
// part of the first header name, so it is dropped; invalid UTF-8 sequences
// are replaced with '?'.

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadText reads r to the end, skipping a leading UTF-8 BOM and replacing
// invalid UTF-8 sequences with '?'. It returns the text and the number of
// bytes consumed from r.
func ReadText(r io.Reader) (string, int64, error) {
	counter := &countingReader{reader: r}
	br := bufio.NewReader(counter)

	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return "", counter.n, fmt.Errorf("skip bom: %w", err)
		}
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return "", counter.n, fmt.Errorf("read text: %w", err)
	}

	return strings.ToValidUTF8(string(data), "?"), counter.n, nil
}

// countingReader tracks bytes read from the wrapped reader.
type countingReader struct {
	reader io.Reader
	n      int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.n += int64(n)
	return n, err
}
