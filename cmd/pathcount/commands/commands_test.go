package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/cmd/pathcount/commands"
)

// network holds both standard query shapes: five you⇝out walks and two
// svr⇝out walks through fft then dac.
const network = `you: bbb ccc
bbb: ddd eee
ccc: ddd eee fff
ddd: ggg
eee: out
fff: out
ggg: out
svr: aaa bbb2
aaa: fft
fft: ccc2
bbb2: tty
tty: ccc2
ccc2: ddd2 eee2
ddd2: hub
hub: fff2
eee2: dac
dac: fff2
fff2: ggg2 hhh
ggg2: out
hhh: out
`

// runCmd executes the CLI with stdin and returns stdout, stderr and the error.
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := commands.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCount_Stdin(t *testing.T) {
	out, _, err := runCmd(t, network, "count", "--from", "you", "--to", "out")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestCount_Waypoints(t *testing.T) {
	out, _, err := runCmd(t, network, "count", "--from", "svr", "--to", "out", "--via", "fft,dac")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestCount_InputFile(t *testing.T) {
	path := writeTestFile(t, "input.txt", network)
	out, _, err := runCmd(t, "", "count", "-i", path, "--from", "svr", "--to", "out")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)
}

func TestCount_MissingFlag(t *testing.T) {
	_, _, err := runCmd(t, network, "count", "--from", "you")
	assert.Error(t, err)
}

func TestCount_MissingInputFile(t *testing.T) {
	_, _, err := runCmd(t, "", "count", "-i", "/nonexistent/input.txt", "--from", "a", "--to", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
}

func TestCount_Cycle(t *testing.T) {
	_, _, err := runCmd(t, "a: b\nb: a c\n", "count", "--from", "a", "--to", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle detected")
}

func TestCount_Verbose(t *testing.T) {
	_, stderr, err := runCmd(t, network, "-v", "count", "--from", "you", "--to", "out")
	require.NoError(t, err)
	assert.Contains(t, stderr, "graph loaded")
	assert.Contains(t, stderr, "walks=5")
}

func TestRun_DefaultQueries(t *testing.T) {
	out, _, err := runCmd(t, network, "run")
	require.NoError(t, err)
	assert.Equal(t, "base: 5\nwaypoints: 2\n", out)
}

func TestRun_SingleQuery(t *testing.T) {
	out, _, err := runCmd(t, network, "run", "-q", "waypoints")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, _, err = runCmd(t, network, "run", "-q", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown query "nope"`)
}

func TestRun_ConfigFile(t *testing.T) {
	cfg := writeTestFile(t, "queries.yaml", `queries:
  - name: through-ccc
    from: you
    to: out
    via: [ccc]
  - name: missing
    from: you
    to: nowhere
`)
	out, _, err := runCmd(t, network, "run", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "through-ccc: 3\nmissing: 0\n", out)
}

func TestRun_BadConfig(t *testing.T) {
	cfg := writeTestFile(t, "queries.yaml", "queries: []\n")
	_, _, err := runCmd(t, network, "run", "-c", cfg)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, _, err := runCmd(t, "a: b c\nb: c\n", "check")
	require.NoError(t, err)
	assert.Equal(t, "vertices: 3\nedges: 3\nacyclic: true\n", out)

	out, _, err = runCmd(t, "a: b\nb: a\n", "check")
	require.Error(t, err)
	assert.Contains(t, out, "acyclic: false")
	assert.Contains(t, err.Error(), `"b" -> "a"`)
}

func TestMalformedInput(t *testing.T) {
	_, _, err := runCmd(t, "no colon here\n", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReach(t *testing.T) {
	out, _, err := runCmd(t, network, "reach", "--from", "svr", "--to", "dac")
	require.NoError(t, err)
	assert.Equal(t, "reachable: true\nhops: 5\npath:\n- svr\n- aaa\n- fft\n- ccc2\n- eee2\n- dac\n", out)

	out, _, err = runCmd(t, network, "reach", "--from", "out", "--to", "you")
	require.NoError(t, err)
	assert.Equal(t, "reachable: false\n", out)
}
