package banner

import (
	"regexp"
	"strings"

	"github.com/fwojciec/oscar"
)

// Line positions of a meeting row. Line 0 is the meeting type and line 5 the
// schedule type; neither is kept.
const (
	timeLine       = 1
	scheduleLine   = 2
	locationLine   = 3
	dateRangeLine  = 4
	instructorLine = 6

	meetingRowLines = 7
)

// NoBreakSpace is the placeholder Banner renders for an empty days cell.
const NoBreakSpace = "&nbsp;"

var (
	tagRe   = regexp.MustCompile(`</?[^>]+(>|$)`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)
)

// ParseMeetings converts meeting table rows into meetings, preserving row order.
// Returns EMEETING if a row has fewer lines than the table has columns.
func ParseMeetings(rows []string) ([]*oscar.Meeting, error) {
	meetings := make([]*oscar.Meeting, 0, len(rows))
	for i, row := range rows {
		m, err := ParseMeeting(row)
		if err != nil {
			return nil, oscar.Errorf(oscar.EMEETING, "row %d: %s", i, oscar.ErrorMessage(err))
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

// ParseMeeting converts a single meeting table row. Cells are read by line
// position; instructor email addresses are collected from the whole row.
func ParseMeeting(row string) (*oscar.Meeting, error) {
	lines := strings.SplitN(row, "\n", meetingRowLines+1)
	if len(lines) < meetingRowLines {
		return nil, oscar.Errorf(oscar.EMEETING, "got %d lines, want at least %d", len(lines), meetingRowLines)
	}

	cells := make([]string, meetingRowLines)
	for i := range cells {
		cells[i] = tagRe.ReplaceAllString(lines[i], "")
	}

	return &oscar.Meeting{
		Time:      cells[timeLine],
		Schedule:  strings.ReplaceAll(cells[scheduleLine], NoBreakSpace, ""),
		Location:  cells[locationLine],
		DateRange: cells[dateRangeLine],
		Instructor: &oscar.Instructor{
			Name:  joinNames(cells[instructorLine]),
			Email: strings.Join(emailRe.FindAllString(row, -1), ","),
		},
	}, nil
}

// joinNames cleans each comma-separated instructor name and rejoins them.
func joinNames(value string) string {
	names := strings.Split(value, ",")
	for i, name := range names {
		names[i] = cleanName(name)
	}
	return strings.Join(names, ",")
}
