package csvio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buddies/core"
	"github.com/katalvlaran/buddies/csvio"
)

func TestReadEdges(t *testing.T) {
	in := "A,B,1\n B , C ,2.5\n\nC,D, 0\n"
	edges, err := csvio.ReadEdges(strings.NewReader(in), csvio.Options{})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2.5},
		{From: "C", To: "D", Weight: 0},
	}, edges)
}

func TestReadEdges_Errors(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		row     int
		wantErr error
	}{
		{"arity", "A,B,1\nA,C\n", 2, nil},
		{"bad weight", "A,B,x\n", 1, strconv.ErrSyntax},
		{"negative", "A,B,1\nA,C,2\nA,D,-1\n", 3, nil},
		{"self pair", "A,A,1\n", 1, nil},
		{"empty name", " ,B,1\n", 1, nil},
		{"nan", "A,B,NaN\n", 1, nil},
		{"bare quote", "A,\"B,1\n", 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvio.ReadEdges(strings.NewReader(tc.in), csvio.Options{})
			require.ErrorIs(t, err, core.ErrMalformedInput)

			var me *core.MalformedInputError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tc.row, me.Row)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestReadEdges_SkipMalformed(t *testing.T) {
	in := "name,other\nA,B,1\nA,B,C,D\nC,D,2\n"
	edges, err := csvio.ReadEdges(strings.NewReader(in), csvio.Options{SkipMalformed: true})
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	// Arity is forgiven, a bad weight is not.
	_, err = csvio.ReadEdges(strings.NewReader("A,B,heavy\n"), csvio.Options{SkipMalformed: true})
	require.ErrorIs(t, err, core.ErrMalformedInput)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buddies.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B,1\nA,C,2\nB,C,3\n"), 0o600))

	edges, err := csvio.ReadFile(path, csvio.Options{})
	require.NoError(t, err)
	assert.Len(t, edges, 3)

	_, err = csvio.ReadFile(filepath.Join(dir, "missing.csv"), csvio.Options{})
	require.ErrorIs(t, err, csvio.ErrOpen)
	require.ErrorIs(t, err, os.ErrNotExist)
}
