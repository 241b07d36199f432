package banner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/oscar"
)

// Labels read from the section detail block.
const (
	AttributesLabel = "Attributes"
	GradeBasisLabel = "Grade Basis"
)

var (
	fieldLabelRe = regexp.MustCompile(`(?m)^<SPAN class="fieldlabeltext">(.*): </SPAN>(.+)$`)
	creditsRe    = regexp.MustCompile(`(\d+)\.\d+\s+Credits`)
	campusRe     = regexp.MustCompile(`(?m)^(.*) Campus$`)
	formatRe     = regexp.MustCompile(`(?m)^(.*) Schedule Type$`)

	// qualifierRe matches single-letter markers such as "(P)" or "(H)".
	qualifierRe = regexp.MustCompile(`\(\w\)`)
	spaceRunRe  = regexp.MustCompile(`\s\s+`)
)

// Body holds the section metadata found in a block's detail row group.
type Body struct {
	Attributes []string
	GradeBasis string
	Credits    int
	Campus     string
	Format     string
}

// ParseBody extracts section metadata from a detail row group.
// Labelled fields, campus and schedule type are optional.
// Returns ECREDITS if the row group has no credit hours.
func ParseBody(row string) (Body, error) {
	m := creditsRe.FindStringSubmatch(row)
	if m == nil {
		return Body{}, oscar.Errorf(oscar.ECREDITS, "credit hours not found")
	}
	credits, err := strconv.Atoi(m[1])
	if err != nil {
		return Body{}, oscar.Errorf(oscar.ECREDITS, "invalid credit hours %q", m[1])
	}

	labels := FieldLabels(row)

	return Body{
		Attributes: splitAttributes(labels[AttributesLabel]),
		GradeBasis: labels[GradeBasisLabel],
		Credits:    credits,
		Campus:     firstSubmatch(campusRe, row),
		Format:     firstSubmatch(formatRe, row),
	}, nil
}

// FieldLabels returns the "Label: value" pairs of a detail row group.
// A repeated label keeps its last value.
func FieldLabels(row string) map[string]string {
	labels := make(map[string]string)
	for _, m := range fieldLabelRe.FindAllStringSubmatch(row, -1) {
		labels[m[1]] = m[2]
	}
	return labels
}

// splitAttributes splits a comma-separated attribute list into cleaned,
// non-empty names.
func splitAttributes(value string) []string {
	attrs := []string{}
	for _, tok := range strings.Split(value, ",") {
		if name := cleanName(tok); name != "" {
			attrs = append(attrs, name)
		}
	}
	return attrs
}

// cleanName removes single-letter qualifiers, collapses whitespace runs and trims.
func cleanName(s string) string {
	s = qualifierRe.ReplaceAllString(s, "")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func firstSubmatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
