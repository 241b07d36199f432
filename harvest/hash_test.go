package harvest_test

import (
	"testing"

	"github.com/fwojciec/oscar/harvest"
	"github.com/stretchr/testify/assert"
)

func TestComputeHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, harvest.ComputeHash("<html>a</html>"), harvest.ComputeHash("<html>a</html>"))
	assert.NotEqual(t, harvest.ComputeHash("<html>a</html>"), harvest.ComputeHash("<html>b</html>"))
	assert.Equal(t, "ef46db3751d8e999", harvest.ComputeHash(""))
}
