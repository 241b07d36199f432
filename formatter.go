package oscar

import (
	"fmt"
	"strings"
)

// FormatCatalog formats a catalog for display.
// Courses are sorted by code and sections by label; meetings keep their order.
func FormatCatalog(catalog Catalog) string {
	if len(catalog) == 0 {
		return ""
	}

	parts := make([]string, 0, len(catalog))
	for _, code := range catalog.Codes() {
		parts = append(parts, FormatCourse(catalog[code]))
	}

	return strings.Join(parts, "\n\n")
}

// FormatCourse formats a single course with its sections.
func FormatCourse(course *Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s", course.Code, course.Name)
	for _, label := range course.Labels() {
		s := course.Sections[label]
		fmt.Fprintf(&b, "\n  %s  CRN %s  %d credits", label, s.RegistrationNumber, s.Credits)
		if s.Format != "" {
			fmt.Fprintf(&b, "  %s", s.Format)
		}
		if s.Campus != "" {
			fmt.Fprintf(&b, "  %s", s.Campus)
		}
		for _, m := range s.Meetings {
			fmt.Fprintf(&b, "\n    %s %s  %s  %s", m.Schedule, m.Time, m.Location, m.DateRange)
			if m.Instructor != nil && m.Instructor.Name != "" {
				fmt.Fprintf(&b, "  %s", m.Instructor.Name)
			}
		}
	}
	return b.String()
}
