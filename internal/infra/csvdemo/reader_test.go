package csvdemo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleCSV is the schedule of a real community demo: 9 segments under one
// youtube link, some with an affected-version column.
const exampleCSV = `https://www.youtube.com/watch?v=0T84sdEfBWE
State of Pulp,mhrivnak,0:15
Community Update,bmbouter,4:32
Debian Content Support for Pulp 2,misa,7:42,2.14
Napoleon style docstrings,asmacdo,11:48,3.0
Docs building check for pull requests on github,bizhang,13:59
Generate random SECRET_KEY for Django as part of setup workflow,bizhang,15:21,3.0
Asynchronous updates of importer,dkliban,16:14,3.0
File importer using the ChangeSet provided by the plugin API,jortel,19:40,3.0
Side by side Pulp2/Pulp3 dev installs,asmacdo,33:38
`

func TestRead_ExampleSchedule(t *testing.T) {
	slug, demos, err := Read(strings.NewReader(exampleCSV))

	require.NoError(t, err)
	assert.Equal(t, "0T84sdEfBWE", slug)
	// The sentinel row never yields a record.
	require.Len(t, demos, 9)

	first := demos[0]
	assert.Equal(t, "State of Pulp", first.Title)
	assert.Equal(t, "mhrivnak", first.Nick)
	assert.Equal(t, 0, first.Min)
	assert.Equal(t, 15, first.Sec)
	assert.Empty(t, first.Version)

	third := demos[2]
	assert.Equal(t, "misa", third.Nick)
	assert.Equal(t, "2.14", third.Version)

	// Only rows with a fourth column carry a version.
	var withVersion int
	for _, d := range demos {
		if d.Version != "" {
			withVersion++
		}
	}
	assert.Equal(t, 4, withVersion)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: domain.ErrMissingVideoLink,
		},
		{
			name:    "first row is not a watch link",
			input:   "https://www.youtube.com/PulpProject\nState of Pulp,mhrivnak,0:15\n",
			wantErr: domain.ErrMissingVideoLink,
		},
		{
			name:    "row with two columns",
			input:   "https://www.youtube.com/watch?v=abc\nState of Pulp,mhrivnak\n",
			wantErr: domain.ErrMalformedRow,
		},
		{
			name:    "duration without colon",
			input:   "https://www.youtube.com/watch?v=abc\nState of Pulp,mhrivnak,015\n",
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "non-numeric duration",
			input:   "https://www.youtube.com/watch?v=abc\nState of Pulp,mhrivnak,a:b\n",
			wantErr: domain.ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRead_ErrorNamesRow(t *testing.T) {
	input := "https://www.youtube.com/watch?v=abc\nGood row,nick,1:23\nBad row,nick,oops\n"
	_, _, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "30.csv")
	require.NoError(t, os.WriteFile(path, []byte(exampleCSV), 0o600))

	slug, demos, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0T84sdEfBWE", slug)
	assert.Len(t, demos, 9)
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
