package banner_test

import (
	"testing"

	"github.com/fwojciec/oscar"
	"github.com/fwojciec/oscar/banner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields", func(t *testing.T) {
		t.Parallel()

		row := "<td CLASS=\"dddefault\">\n" +
			"<SPAN class=\"fieldlabeltext\">Associated Term: </SPAN>Fall 2020 \n" +
			"<br>\n" +
			"<SPAN class=\"fieldlabeltext\">Attributes: </SPAN>Honors (H), Distance  Learning\n" +
			"<br>\n" +
			"<SPAN class=\"fieldlabeltext\">Grade Basis: </SPAN>L\n" +
			"<br>\n" +
			"Georgia Tech-Atlanta * Campus\n" +
			"<br>\n" +
			"Lecture* Schedule Type\n" +
			"<br>\n" +
			"       3.000 Credits\n" +
			"<br>\n"

		b, err := banner.ParseBody(row)
		require.NoError(t, err)

		assert.Equal(t, banner.Body{
			Attributes: []string{"Honors", "Distance Learning"},
			GradeBasis: "L",
			Credits:    3,
			Campus:     "Georgia Tech-Atlanta *",
			Format:     "Lecture*",
		}, b)
	})

	t.Run("returns empty optional fields", func(t *testing.T) {
		t.Parallel()

		b, err := banner.ParseBody("<td CLASS=\"dddefault\">\n       4.000 Credits\n<br>\n")
		require.NoError(t, err)

		assert.Equal(t, 4, b.Credits)
		assert.NotNil(t, b.Attributes)
		assert.Empty(t, b.Attributes)
		assert.Empty(t, b.GradeBasis)
		assert.Empty(t, b.Campus)
		assert.Empty(t, b.Format)
	})

	t.Run("returns ECREDITS without credit hours", func(t *testing.T) {
		t.Parallel()

		_, err := banner.ParseBody("<td CLASS=\"dddefault\">\nOnline Campus\n<br>\n")
		require.Error(t, err)
		assert.Equal(t, oscar.ECREDITS, oscar.ErrorCode(err))
	})

	t.Run("uses first credit value followed by Credits", func(t *testing.T) {
		t.Parallel()

		b, err := banner.ParseBody("       1.000 TO     6.000 Credits\n<br>\n12.000 Credits\n")
		require.NoError(t, err)
		assert.Equal(t, 6, b.Credits)
	})

	t.Run("drops empty attribute tokens", func(t *testing.T) {
		t.Parallel()

		row := "<SPAN class=\"fieldlabeltext\">Attributes: </SPAN>Honors (H), , (X)\n3.000 Credits\n"

		b, err := banner.ParseBody(row)
		require.NoError(t, err)
		assert.Equal(t, []string{"Honors"}, b.Attributes)
	})

	t.Run("does not split grade basis", func(t *testing.T) {
		t.Parallel()

		row := "<SPAN class=\"fieldlabeltext\">Grade Basis: </SPAN>Letter (L),  Pass\n3.000 Credits\n"

		b, err := banner.ParseBody(row)
		require.NoError(t, err)
		assert.Equal(t, "Letter (L),  Pass", b.GradeBasis)
	})

	t.Run("uses first campus and schedule type lines", func(t *testing.T) {
		t.Parallel()

		row := "Online Campus\nLecture* Schedule Type\nAtlanta Campus\nLab Schedule Type\n3.000 Credits\n"

		b, err := banner.ParseBody(row)
		require.NoError(t, err)
		assert.Equal(t, "Online", b.Campus)
		assert.Equal(t, "Lecture*", b.Format)
	})
}

func TestFieldLabels(t *testing.T) {
	t.Parallel()

	t.Run("last value wins for repeated label", func(t *testing.T) {
		t.Parallel()

		row := "<SPAN class=\"fieldlabeltext\">Levels: </SPAN>Graduate\n" +
			"<SPAN class=\"fieldlabeltext\">Levels: </SPAN>Undergraduate\n"

		assert.Equal(t, map[string]string{"Levels": "Undergraduate"}, banner.FieldLabels(row))
	})

	t.Run("ignores labels not at line start", func(t *testing.T) {
		t.Parallel()

		row := "x <SPAN class=\"fieldlabeltext\">Levels: </SPAN>Graduate\n"

		assert.Empty(t, banner.FieldLabels(row))
	})
}
