package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/seeq"
)

const (
	adapter = "CGCTAATTAATGGAAT"
	reads   = "GGGGCGCTAATAATGGAATGGGG\nATGCTGATGCTGGGGG\n"
)

// run executes the command in-process and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	c := newRootCmd()
	var out, stderr bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&stderr)
	c.SetIn(strings.NewReader(stdin))
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestRun_Output(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, "GGGGCGCTAATAATGGAATGGGG\n"},
		{"positions and distance", []string{"-p", "-k", "-l", "-n"}, "1 4-18 1 \n"},
		{"compact", []string{"-f"}, "1:4-18:1\n"},
		{"count", []string{"-c"}, "1\n"},
		{"count inverted", []string{"-c", "-i"}, "1\n"},
		{"invert", []string{"-i"}, "ATGCTGATGCTGGGGG\n"},
		{"invert with lines", []string{"-i", "-l"}, "2 ATGCTGATGCTGGGGG\n"},
		{"match only", []string{"-m"}, "CGCTAATAATGGAAT\n"},
		{"end", []string{"-e"}, "GGGG\n"},
		{"prefix", []string{"-r"}, "GGGG\n"},
		{"line numbers", []string{"-l"}, "1 GGGGCGCTAATAATGGAATGGGG\n"},
		{"color", []string{"--color", "always"}, "GGGG" + boldRed + "CGCTAATAATGGAAT" + reset + "GGGG\n"},
		{"color never", []string{"--color", "never"}, "GGGGCGCTAATAATGGAATGGGG\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-d", "3"}, tt.args...)
			out, err := run(t, reads, append(args, adapter)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_ExactMatchIsGreen(t *testing.T) {
	out, err := run(t, "TTGATTACATT\n", "--color", "always", "GATTACA")
	require.NoError(t, err)
	assert.Equal(t, "TT"+boldGreen+"GATTACA"+reset+"TT\n", out)
}

func TestRun_Best(t *testing.T) {
	line := "GATTCCAGGGATTACA\n"

	out, err := run(t, line, "-d", "1", "-m", "GATTACA")
	require.NoError(t, err)
	assert.Equal(t, "GATTCCA\n", out)

	out, err = run(t, line, "-d", "1", "-m", "-b", "GATTACA")
	require.NoError(t, err)
	assert.Equal(t, "GATTACA\n", out)
}

func TestRun_CompactCoversFlatRun(t *testing.T) {
	out, err := run(t, "ACGGT\nACGGTCCCC\n", "-d", "1", "-f", "ACGT")
	require.NoError(t, err)
	assert.Equal(t, "1:0-4:1\n2:0-4:1\n", out)
}

func TestRun_IUPAC(t *testing.T) {
	out, err := run(t, "AAGGTCCAA\nAAGGCCCAA\n", "-l", "-n", "GG[AT]CC")
	require.NoError(t, err)
	assert.Equal(t, "1 \n", out)

	out, err = run(t, "aaggnccaa\n", "-m", "GGNCC")
	require.NoError(t, err)
	assert.Equal(t, "ggncc\n", out)
}

func TestRun_Skip(t *testing.T) {
	in := "GATTACA\nGATTACA!\nGATTACA\n"

	out, err := run(t, in, "-c", "GATTACA")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, in, "-c", "-s", "GATTACA")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRun_RawBytes(t *testing.T) {
	out, err := run(t, "say helo world\ngoodbye\n", "--dna=false", "-d", "1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "say helo world\n", out)

	_, err = run(t, "", "hello")
	require.Error(t, err, "DNA syntax should reject a non-nucleotide pattern")
}

func TestRun_FileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.txt")
	require.NoError(t, os.WriteFile(path, []byte(reads), 0o644))

	out, err := run(t, "", "-d", "3", "-f", adapter, path)
	require.NoError(t, err)
	assert.Equal(t, "1:4-18:1\n", out)

	out, err = run(t, reads, "-d", "3", "-f", adapter, "-")
	require.NoError(t, err)
	assert.Equal(t, "1:4-18:1\n", out)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"negative distance", []string{"-d", "-1", "ACGT"}, "non-negative"},
		{"no output", []string{"-n", "ACGT"}, "no output will be generated"},
		{"bad color", []string{"--color", "sometimes", "ACGT"}, "invalid --color"},
		{"bad pattern", []string{"AC[GT"}, "invalid pattern"},
		{"distance too large", []string{"-d", "4", "ACGT"}, "invalid distance"},
		{"missing file", []string{"ACGT", "/nonexistent/reads.txt"}, "cannot open input"},
		{"no pattern", nil, "arg"},
		{"too many args", []string{"ACGT", "a", "b"}, "arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_ErrorKinds(t *testing.T) {
	_, err := run(t, "", "-d", "4", "ACGT")
	assert.True(t, errors.Is(err, seeq.ErrInvalidDistance))

	_, err = run(t, "", "A]")
	assert.True(t, errors.Is(err, seeq.ErrInvalidPattern))
}

func TestRun_Verbose(t *testing.T) {
	c := newRootCmd()
	var out, stderr bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&stderr)
	c.SetIn(strings.NewReader(reads))
	c.SetArgs([]string{"-z", "-c", "-d", "3", adapter})

	require.NoError(t, c.Execute())
	assert.Equal(t, "1\n", out.String())
	assert.Contains(t, stderr.String(), "seeq: parsing pattern")
	assert.Contains(t, stderr.String(), "2 lines, 0 skipped, 1 matching")
}

func TestRun_Version(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestResolveColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, resolveColor("always", &buf))
	assert.False(t, resolveColor("never", &buf))
	assert.False(t, resolveColor("auto", &buf))
}
