package oscar

import "sort"

// Catalog maps course codes (e.g. "CS 1301") to courses.
type Catalog map[string]*Course

// Course is one catalog entry. Sections that share a code are grouped here.
type Course struct {
	Code     string              `json:"code"`
	Name     string              `json:"name"`
	Sections map[string]*Section `json:"sections"`
}

// Section is a single registered offering of a course.
type Section struct {
	RegistrationNumber string     `json:"registrationNumber"`
	Attributes         []string   `json:"attributes"`
	Credits            int        `json:"credits"`
	GradeBasis         string     `json:"gradeBasis"`
	Campus             string     `json:"campus"`
	Format             string     `json:"format"`
	Meetings           []*Meeting `json:"meetings"`
}

// Meeting is one row of a section's scheduled meeting times.
type Meeting struct {
	Time       string      `json:"time"`
	Schedule   string      `json:"schedule"`
	Location   string      `json:"location"`
	DateRange  string      `json:"dateRange"`
	Instructor *Instructor `json:"instructor"`
}

// Instructor teaches a meeting. Name and Email may each hold several
// comma-joined values when a meeting is co-taught.
type Instructor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AddSection stores s under label in the course identified by code, creating
// the course with the given name if it does not exist yet. An existing
// section with the same label is replaced.
func (c Catalog) AddSection(code, name, label string, s *Section) {
	course, ok := c[code]
	if !ok {
		course = &Course{
			Code:     code,
			Name:     name,
			Sections: make(map[string]*Section),
		}
		c[code] = course
	}
	course.Sections[label] = s
}

// Codes returns the course codes in lexical order.
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SectionCount returns the total number of sections across all courses.
func (c Catalog) SectionCount() int {
	n := 0
	for _, course := range c {
		n += len(course.Sections)
	}
	return n
}

// Labels returns the course's section labels in lexical order.
func (c *Course) Labels() []string {
	labels := make([]string, 0, len(c.Sections))
	for label := range c.Sections {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
