package endnote

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/beevik/etree"
)

// DefaultSeparator joins the rendered names of multi-valued fields.
const DefaultSeparator = "; "

// Extractor pulls fixed-column records out of an EndNote XML export.
type Extractor struct {
	separator string
}

// NewExtractor creates an extractor joining multi-valued fields with separator.
// An empty separator selects DefaultSeparator.
func NewExtractor(separator string) *Extractor {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Extractor{separator: separator}
}

// ExtractFile parses the EndNote XML dump at path and extracts its records.
func (e *Extractor) ExtractFile(path string) ([]Record, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to parse EndNote XML %s: %w", path, err)
	}
	return e.extract(doc)
}

// Extract parses an EndNote XML dump from r and extracts its records.
func (e *Extractor) Extract(r io.Reader) ([]Record, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse EndNote XML: %w", err)
	}
	return e.extract(doc)
}

// extract walks every records/record element under the document root, in
// document order. A record element with none of the expected sub-fields
// still yields an all-empty row.
func (e *Extractor) extract(doc *etree.Document) ([]Record, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("failed to parse EndNote XML: no document root")
	}

	elements := root.FindElements("./records/record")
	slog.Debug("Scanning EndNote export", "records", len(elements))

	records := make([]Record, 0, len(elements))
	for _, el := range elements {
		records = append(records, e.extractRecord(el))
	}
	return records, nil
}

func (e *Extractor) extractRecord(rec *etree.Element) Record {
	// Every author contributes a segment, textless ones included. The empty
	// segments (and their stray separators) match the spreadsheets produced
	// by the original extractor.
	var authors []string
	for _, style := range rec.FindElements("./contributors/authors/author/style") {
		authors = append(authors, style.Text())
	}

	return Record{
		Authors:  strings.Join(authors, e.separator),
		PubDate:  styleText(rec, "./dates/year/style"),
		Title:    styleText(rec, "./titles/title/style"),
		Journal:  styleText(rec, "./titles/secondary-title/style"),
		Volume:   volumeRef(styleText(rec, "./volume/style"), styleText(rec, "./number/style"), styleText(rec, "./pages/style")),
		Label:    styleText(rec, "./label/style"),
		WorkType: styleText(rec, "./work-type/style"),
	}
}

// styleText resolves a single-valued field relative to a record element.
// A missing element and an element with no text both yield "".
func styleText(rec *etree.Element, path string) string {
	el := rec.FindElement(path)
	if el == nil {
		return ""
	}
	return el.Text()
}

// volumeRef combines volume, number, and pages into "volume:number:pages",
// collapsing the all-empty case to "" rather than "::".
func volumeRef(volume, number, pages string) string {
	ref := fmt.Sprintf("%s:%s:%s", volume, number, pages)
	if ref == "::" {
		return ""
	}
	return ref
}
