package scraper

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

const (
	// MaxHTMLSize limits snapshot input to 10MB to prevent memory exhaustion
	MaxHTMLSize = 10 * 1024 * 1024
)

// Snapshot is a parsed page DOM, queryable by CSS selector and XPath.
type Snapshot struct {
	root *html.Node
	doc  *goquery.Document
}

// ValidateHTML checks snapshot size
func ValidateHTML(content string) error {
	if len(content) > MaxHTMLSize {
		return fmt.Errorf("html exceeds maximum size of %d bytes", MaxHTMLSize)
	}
	return nil
}

// DetectCharset detects and returns charset from HTML bytes
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadSnapshot parses serialized HTML. Input that is not valid UTF-8 is
// charset-detected and transcoded first.
func LoadSnapshot(content string) (*Snapshot, error) {
	if err := ValidateHTML(content); err != nil {
		return nil, err
	}

	root, err := htmlquery.Parse(utf8Reader(content))
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	return &Snapshot{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}, nil
}

func utf8Reader(content string) io.Reader {
	if utf8.ValidString(content) {
		return strings.NewReader(content)
	}

	contentType := "text/html; charset=" + sniffCharset([]byte(content))
	r, err := charset.NewReader(strings.NewReader(content), contentType)
	if err != nil {
		// Fallback to direct parsing
		return strings.NewReader(content)
	}
	return r
}

// japaneseCharsets are tried in order when nothing better is known.
var japaneseCharsets = []string{"shift_jis", "euc-jp", "iso-2022-jp"}

// sniffCharset picks the decoding label for input that is not UTF-8. A BOM
// or <meta charset> wins; then a Japanese encoding that decodes without
// errors, chardet's candidates first; then chardet's best guess.
func sniffCharset(data []byte) string {
	// windows-1252 and utf-8 are DetermineEncoding's fallbacks, not declarations.
	if _, name, _ := charset.DetermineEncoding(data, "text/html"); name != "windows-1252" && name != "utf-8" {
		return name
	}

	var candidates []string
	if results, err := chardet.NewTextDetector().DetectAll(data); err == nil {
		for _, r := range results {
			label := strings.ToLower(r.Charset)
			if slices.Contains(japaneseCharsets, label) {
				candidates = append(candidates, label)
			}
		}
	}
	candidates = append(candidates, japaneseCharsets...)

	for _, label := range candidates {
		if decodesCleanly(data, label) {
			return label
		}
	}
	return DetectCharset(data)
}

func decodesCleanly(data []byte, label string) bool {
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return false
	}
	out, err := enc.NewDecoder().Bytes(data)
	return err == nil && !bytes.ContainsRune(out, utf8.RuneError)
}

// Sanitizer strips scripts and event handlers from snapshots before they
// are written to disk for diagnosis.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer that keeps document structure and
// class attributes so selector drift can be debugged from the dump.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class", "id").Globally()
	policy.AllowElements("html", "head", "body", "title", "section", "header", "footer", "nav", "main")
	return &Sanitizer{policy: policy}
}

// Sanitize returns the cleaned HTML.
func (s *Sanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}

// textOf trims the text content of a node.
func textOf(n *html.Node) string {
	return strings.TrimSpace(htmlquery.InnerText(n))
}
