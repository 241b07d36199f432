package banner

import (
	"regexp"
	"strings"

	"github.com/fwojciec/oscar"
)

// headerRe captures the text of the course detail link in a block title row.
var headerRe = regexp.MustCompile(`crn_in=\d+">(.*)</a>`)

// Header holds the fields of a course block title.
type Header struct {
	Name               string
	RegistrationNumber string
	Code               string
	Section            string
}

// ParseHeader finds the course detail link in a title row group and splits
// its text into header fields.
// Returns EHEADER if the row group has no course detail link.
func ParseHeader(row, delimiter string) (Header, error) {
	m := headerRe.FindStringSubmatch(row)
	if m == nil {
		return Header{}, oscar.Errorf(oscar.EHEADER, "course detail link not found")
	}
	return SplitHeader(m[1], delimiter)
}

// SplitHeader splits "<name>D<crn>D<code>D<section>" into its fields.
//
// The delimiter may also occur inside the name, so only its last three
// occurrences are significant. They are resolved right to left: the last
// one precedes the section, the last one before that precedes the code, and
// the last one before that precedes the registration number. The other
// fields are assumed never to contain the delimiter.
//
// Returns EHEADER if the header holds fewer than three delimiters.
func SplitHeader(header, delimiter string) (Header, error) {
	sectionIdx := strings.LastIndex(header, delimiter)
	if sectionIdx < 0 {
		return Header{}, oscar.Errorf(oscar.EHEADER, "header %q: section delimiter not found", header)
	}
	codeIdx := strings.LastIndex(header[:sectionIdx], delimiter)
	if codeIdx < 0 {
		return Header{}, oscar.Errorf(oscar.EHEADER, "header %q: code delimiter not found", header)
	}
	crnIdx := strings.LastIndex(header[:codeIdx], delimiter)
	if crnIdx < 0 {
		return Header{}, oscar.Errorf(oscar.EHEADER, "header %q: registration number delimiter not found", header)
	}

	n := len(delimiter)
	return Header{
		Name:               header[:crnIdx],
		RegistrationNumber: header[crnIdx+n : codeIdx],
		Code:               header[codeIdx+n : sectionIdx],
		Section:            header[sectionIdx+n:],
	}, nil
}
