package document

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSelector matches the log line elements of an exported log.
const DefaultSelector = ".right code"

// DefaultSkipTrailing is the number of footer elements after the last log line.
const DefaultSkipTrailing = 1

// Document is the part of an exported log the parser consumes.
type Document struct {
	Title string
	Lines []string
}

// Extract reads the title and the text of every element matching selector,
// in document order, dropping the final skipTrailing elements.
func Extract(r io.Reader, selector string, skipTrailing int) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	if selector == "" {
		selector = DefaultSelector
	}
	if skipTrailing < 0 {
		skipTrailing = 0
	}

	sel := doc.Find(selector)
	n := sel.Length() - skipTrailing
	lines := make([]string, 0, max(n, 0))
	sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= n {
			return false
		}
		lines = append(lines, s.Text())
		return true
	})

	return &Document{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Lines: lines,
	}, nil
}

// ExtractFile is Extract on the file at path.
func ExtractFile(path, selector string, skipTrailing int) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Extract(f, selector, skipTrailing)
}
