package commands_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/cmd/lvpath/commands"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphio"
)

const classicGraph = `# six-node road network plus an island
nodes 7
undirected
0 1 7
0 2 9
0 5 14
1 2 10
1 3 15
2 3 11
2 5 2
3 4 6
4 5 9
`

const classicYAML = `nodes: 3
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 1, to: 2, weight: 4}
  - {from: 0, to: 2, weight: 9}
`

const heightmap = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range map[string]string{
		"/data/classic.txt":  classicGraph,
		"/data/small.yaml":   classicYAML,
		"/data/hill.txt":     heightmap,
		"/data/negative.txt": "0 1 -2\n",
	} {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}

	return fs
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := commands.NewRootCmd(newFs(t))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCLI_Golden(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"route_classic", []string{"route", "/data/classic.txt", "--from", "0", "--to", "4"}},
		{"route_sources", []string{"route", "/data/classic.txt", "--sources", "0,5", "--to", "4"}},
		{"route_unreachable", []string{"route", "/data/classic.txt", "--from", "0", "--to", "6"}},
		{"route_yaml", []string{"route", "/data/small.yaml", "--from", "0", "--to", "2"}},
		{"hill", []string{"hill", "/data/hill.txt", "--timing=false"}},
		{"hill_bfs", []string{"hill", "/data/hill.txt", "--timing=false", "--algorithm", "bfs"}},
		{"nexthop_classic", []string{"nexthop", "/data/classic.txt", "--workers", "2"}},
		{"gen_path", []string{"gen", "path", "--n", "3", "--directed"}},
		{"gen_grid", []string{"gen", "grid", "--rows", "2", "--cols", "2", "--min-weight", "4", "--max-weight", "4"}},
	}
	g := goldie.New(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(out))
		})
	}
}

func TestCLI_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		is   error
	}{
		{"MissingFile", []string{"route", "/data/none.txt", "--from", "0", "--to", "1"}, nil},
		{"NoFrom", []string{"route", "/data/classic.txt", "--to", "1"}, nil},
		{"NoTo", []string{"route", "/data/classic.txt", "--from", "1"}, nil},
		{"OutOfRange", []string{"route", "/data/classic.txt", "--from", "0", "--to", "9"}, dijkstra.ErrNodeOutOfRange},
		{"TargetMinusOne", []string{"route", "/data/classic.txt", "--from", "0", "--to=-1"}, dijkstra.ErrNodeOutOfRange},
		{"SourcesOutOfRange", []string{"route", "/data/classic.txt", "--sources", "0,5", "--to", "9"}, dijkstra.ErrNodeOutOfRange},
		{"SourcesTargetMinusOne", []string{"route", "/data/classic.txt", "--sources", "0,5", "--to=-1"}, dijkstra.ErrNodeOutOfRange},
		{"SourcesNegative", []string{"route", "/data/negative.txt", "--sources", "0,1", "--to", "1"}, dijkstra.ErrNegativeWeight},
		{"Negative", []string{"route", "/data/negative.txt", "--from", "0", "--to", "1"}, dijkstra.ErrNegativeWeight},
		{"NexthopNegative", []string{"nexthop", "/data/negative.txt"}, dijkstra.ErrNegativeWeight},
		{"BadAlgorithm", []string{"hill", "/data/hill.txt", "--algorithm", "astar"}, nil},
		{"BadWorkers", []string{"nexthop", "/data/classic.txt", "--workers", "-1"}, nil},
		{"BadGraph", []string{"nexthop", "/data/hill.txt"}, graphio.ErrSyntax},
		{"MissingConfig", []string{"hill", "/data/hill.txt", "--config", "/etc/none.yaml"}, nil},
		{"NoArgs", []string{"hill"}, nil},
		{"GenUnknown", []string{"gen", "torus"}, nil},
		{"GenTooSmall", []string{"gen", "cycle", "--n", "2"}, builder.ErrTooFewVertices},
		{"GenBadWeights", []string{"gen", "path", "--min-weight", "5", "--max-weight", "1"}, builder.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestCLI_ConfigFile(t *testing.T) {
	fs := newFs(t)
	require.NoError(t, afero.WriteFile(fs, "/etc/lvpath.yaml", []byte("timing: false\nalgorithm: bfs\nlog_level: debug\n"), 0o644))

	var out, errOut bytes.Buffer
	cmd := commands.NewRootCmd(fs)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"hill", "/data/hill.txt", "--config", "/etc/lvpath.yaml"})
	require.NoError(t, cmd.Execute())

	assert.NotContains(t, out.String(), "time:")
	assert.Contains(t, out.String(), "Part 2 answer: 29")
	assert.Contains(t, errOut.String(), "configuration loaded")
	assert.Contains(t, errOut.String(), "bfs")
}

// TestCLI_GenThenRoute writes a generated graph and routes over it.
func TestCLI_GenThenRoute(t *testing.T) {
	fs := newFs(t)
	exec := func(args ...string) string {
		var out bytes.Buffer
		cmd := commands.NewRootCmd(fs)
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	exec("gen", "grid", "--rows", "3", "--cols", "4", "-o", "/data/grid.txt")
	exists, err := afero.Exists(fs, "/data/grid.txt")
	require.NoError(t, err)
	require.True(t, exists)

	out := exec("route", "/data/grid.txt", "--from", "0", "--to", "11")
	assert.Contains(t, out, "distance: 5\n")
}
