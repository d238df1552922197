package readingreact

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmzlois/readingreact/grid"
)

func runGuides(t *testing.T, r, c int) (string, error) {
	t.Helper()

	rows, columns = r, c

	t.Cleanup(func() { rows, columns = 1, 1 })

	var out bytes.Buffer
	guidesCmd.SetOut(&out)

	err := guidesCmd.RunE(guidesCmd, nil)

	return out.String(), err
}

func TestGuidesCommand(t *testing.T) {
	t.Run("prints row-major guides", func(t *testing.T) {
		out, err := runGuides(t, 2, 3)
		require.NoError(t, err)

		assert.Equal(t, "0\t1\t1\n1\t2\t1\n2\t3\t1\n3\t1\t2\n4\t2\t2\n5\t3\t2\n", out)
	})

	t.Run("zero rows print nothing", func(t *testing.T) {
		out, err := runGuides(t, 0, 4)
		require.NoError(t, err)

		assert.Empty(t, out)
	})

	t.Run("negative columns", func(t *testing.T) {
		_, err := runGuides(t, 2, -1)

		assert.ErrorIs(t, err, grid.ErrInvalidDimension)
	})
}
