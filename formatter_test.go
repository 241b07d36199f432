package oscar_test

import (
	"testing"

	"github.com/fwojciec/oscar"
	"github.com/stretchr/testify/assert"
)

func TestFormatCatalog(t *testing.T) {
	t.Parallel()

	t.Run("formats course with section and meeting", func(t *testing.T) {
		t.Parallel()

		catalog := oscar.Catalog{}
		catalog.AddSection("CS 1301", "Intro to Computing", "A", &oscar.Section{
			RegistrationNumber: "80123",
			Credits:            3,
			Campus:             "Georgia Tech-Atlanta *",
			Format:             "Lecture*",
			Meetings: []*oscar.Meeting{
				{
					Time:       "8:00 am - 9:15 am",
					Schedule:   "TR",
					Location:   "Howey Physics L1",
					DateRange:  "Aug 17, 2020 - Dec 10, 2020",
					Instructor: &oscar.Instructor{Name: "Jane Doe"},
				},
			},
		})

		result := oscar.FormatCatalog(catalog)

		expected := "CS 1301  Intro to Computing\n" +
			"  A  CRN 80123  3 credits  Lecture*  Georgia Tech-Atlanta *\n" +
			"    TR 8:00 am - 9:15 am  Howey Physics L1  Aug 17, 2020 - Dec 10, 2020  Jane Doe"
		assert.Equal(t, expected, result)
	})

	t.Run("sorts courses by code and sections by label", func(t *testing.T) {
		t.Parallel()

		catalog := oscar.Catalog{}
		catalog.AddSection("MATH 1554", "Linear Algebra", "B", &oscar.Section{RegistrationNumber: "2"})
		catalog.AddSection("CS 1301", "Intro to Computing", "A", &oscar.Section{RegistrationNumber: "3"})
		catalog.AddSection("MATH 1554", "Linear Algebra", "A", &oscar.Section{RegistrationNumber: "1"})

		result := oscar.FormatCatalog(catalog)

		expected := "CS 1301  Intro to Computing\n" +
			"  A  CRN 3  0 credits\n\n" +
			"MATH 1554  Linear Algebra\n" +
			"  A  CRN 1  0 credits\n" +
			"  B  CRN 2  0 credits"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for empty catalog", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, oscar.FormatCatalog(oscar.Catalog{}))
	})
}
