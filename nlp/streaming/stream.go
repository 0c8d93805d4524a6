package streaming

import (
	"bufio"
	"io"
	"strings"
)

// DefaultSeparator marks the end of one document in a multi-document stream.
const DefaultSeparator = "---"

// Documents calls handler for every document in r. Documents are separated by
// lines whose trimmed content equals sep; blank documents are skipped.
func Documents(r io.Reader, sep string, handler func(doc string) error) error {
	if sep == "" {
		sep = DefaultSeparator
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var b strings.Builder
	flush := func() error {
		doc := strings.TrimSpace(b.String())
		b.Reset()
		if doc == "" {
			return nil
		}
		return handler(doc)
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == sep {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return flush()
}
