package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Walkthrough(t *testing.T) {
	const input = "2 2 0\n1 0\n0 2\n2 2 0\n0 3\n0 0\n"

	out, err := execute(t, input, "run")
	require.NoError(t, err)
	requireInOrder(t, out,
		"First Matrix:",
		"First one in sparse matrix format", "0, 0, 1\n1, 1, 2\n",
		"First one in normal matrix format", "1\t0\n0\t2\n",
		"Second Matrix:",
		"Second one in sparse matrix format", "0, 1, 3\n",
		"Second one in normal matrix format", "0\t3\n0\t0\n",
		"After Transpose first one in normal format", "1\t0\n0\t2\n",
		"After Transpose second one in normal format", "0\t0\n3\t0\n",
		"Multiplication of matrices in sparse matrix form:", "0, 1, 6\n",
		"Addition of matrices in sparse matrix form:", "0, 1, 3\n0, 0, 1\n1, 1, 2\n",
	)

	parallel, err := execute(t, input, "run", "--workers", "4")
	require.NoError(t, err)
	require.Equal(t, out, parallel)
}

func TestRun_MismatchesAreReported(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		multiplied string
		added      string
	}{
		{"shape", "2 2 0 1 0 0 1\n2 3 0 1 0 0 0 0 1\n", msgMultiplySize, msgAddSize},
		{"common value", "1 1 0 5\n1 1 1 4\n", msgCommonValue, msgCommonValue},
		{"non-zero common value", "1 1 2 5\n1 1 2 5\n", msgNonZeroCommon, "0, 0, 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.input, "run")
			require.NoError(t, err)
			requireInOrder(t, out,
				"Multiplication of matrices in sparse matrix form:", tt.multiplied,
				"Addition of matrices in sparse matrix form:", tt.added,
			)
		})
	}
}

func TestRun_TruncatedInput(t *testing.T) {
	_, err := execute(t, "2 2 0 1 0 0 1\n2 2", "run")
	require.ErrorIs(t, err, errUnexpectedEOF)
}
