// Package banner parses the section search results page rendered by
// Ellucian Banner (bwckschd.p_get_crse_unsec) into an oscar.Catalog.
//
// The page carries no machine-friendly separators. Extraction relies on a
// handful of literal markers and on line positions inside each table row, so
// every marker below must match the source document byte for byte.
package banner

import (
	"strings"

	"github.com/fwojciec/oscar"
)

const (
	// SectionsCaption marks the start of the results region.
	SectionsCaption = `<caption class="captiontext">Sections Found</caption>`

	// BottomLinksTable marks the end of the results region. Its last
	// occurrence in the document is used.
	BottomLinksTable = `<table  CLASS="datadisplaytable" summary="This is for formatting of the bottom links." WIDTH="50%">`

	// CourseBlockStart opens the title row of each course block.
	CourseBlockStart = "<tr>\n<th CLASS=\"ddtitle\" scope=\"colgroup\" >"

	// RowStart splits a course block into row groups.
	RowStart = "<tr>\n"

	// DefaultDelimiter joins the fields of a course block title.
	DefaultDelimiter = " - "
)

// Row group positions within a course block. Row group 2 is the meeting
// table's column header row.
const (
	headerRow       = 0
	bodyRow         = 1
	firstMeetingRow = 3
)

// Ensure Parser implements oscar.Parser at compile time.
var _ oscar.Parser = (*Parser)(nil)

// SkipFunc receives the error of a course block that was skipped.
// Index is the zero-based position of the block in the document.
type SkipFunc func(index int, err error)

// Parser extracts catalogs from section search documents.
// A Parser holds no state between calls and is safe for concurrent use.
type Parser struct {
	delimiter string
	skip      SkipFunc
}

// Option configures a Parser.
type Option func(*Parser)

// WithDelimiter sets the title field delimiter.
// Defaults to DefaultDelimiter if not specified or empty.
func WithDelimiter(d string) Option {
	return func(p *Parser) {
		if d != "" {
			p.delimiter = d
		}
	}
}

// WithSkipMalformed makes Parse skip course blocks that fail extraction
// instead of failing the whole document. Each skipped block is reported to fn.
func WithSkipMalformed(fn SkipFunc) Option {
	return func(p *Parser) {
		p.skip = fn
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter: DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts every course block in the document and folds the resulting
// sections into courses keyed by code. By default the first malformed block
// fails the whole parse.
func (p *Parser) Parse(document string) (oscar.Catalog, error) {
	blocks, err := SplitBlocks(document)
	if err != nil {
		return nil, err
	}

	catalog := make(oscar.Catalog)
	for i, block := range blocks {
		b, err := p.parseBlock(block)
		if err != nil {
			err = oscar.Errorf(oscar.ErrorCode(err), "block %d: %s", i, oscar.ErrorMessage(err))
			if p.skip != nil {
				p.skip(i, err)
				continue
			}
			return nil, err
		}
		catalog.AddSection(b.header.Code, b.header.Name, b.header.Section, b.section)
	}

	return catalog, nil
}

// SplitBlocks bounds the results region of the document and splits it into
// one raw block per course section.
// Returns EBOUNDARY if either region marker is missing.
func SplitBlocks(document string) ([]string, error) {
	start := strings.Index(document, SectionsCaption)
	if start < 0 {
		return nil, oscar.Errorf(oscar.EBOUNDARY, "sections caption not found")
	}
	end := strings.LastIndex(document, BottomLinksTable)
	if end < 0 {
		return nil, oscar.Errorf(oscar.EBOUNDARY, "bottom links table not found")
	}
	if end < start {
		end = start
	}

	// The first segment is the caption and anything before the first block.
	return strings.Split(document[start:end], CourseBlockStart)[1:], nil
}

type block struct {
	header  Header
	section *oscar.Section
}

func (p *Parser) parseBlock(raw string) (*block, error) {
	rows := strings.Split(raw, RowStart)

	header, err := ParseHeader(rows[headerRow], p.delimiter)
	if err != nil {
		return nil, err
	}

	var body string
	if len(rows) > bodyRow {
		body = rows[bodyRow]
	}
	b, err := ParseBody(body)
	if err != nil {
		return nil, crnError(header.RegistrationNumber, err)
	}

	var meetingRows []string
	if len(rows) > firstMeetingRow {
		meetingRows = rows[firstMeetingRow:]
	}
	meetings, err := ParseMeetings(meetingRows)
	if err != nil {
		return nil, crnError(header.RegistrationNumber, err)
	}

	return &block{
		header: header,
		section: &oscar.Section{
			RegistrationNumber: header.RegistrationNumber,
			Attributes:         b.Attributes,
			Credits:            b.Credits,
			GradeBasis:         b.GradeBasis,
			Campus:             b.Campus,
			Format:             b.Format,
			Meetings:           meetings,
		},
	}, nil
}

// crnError prefixes the message of err with the section's registration number.
func crnError(crn string, err error) error {
	return oscar.Errorf(oscar.ErrorCode(err), "crn %s: %s", crn, oscar.ErrorMessage(err))
}
