package sexpr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		In  string
		Out Config
	}{
		{
			In:  ``,
			Out: DefaultConfig(),
		},
		{
			In: "max_depth: 64\ntrace: true\n",
			Out: Config{
				MaxDepth:           64,
				Trace:              true,
				Prompt:             "sexpr> ",
				ContinuationPrompt: "  ...> ",
				History:            "~/.sexpr_history",
			},
		},
		{
			In: "prompt: \"> \"\ncontinuation_prompt: \". \"\nhistory: \"\"\n",
			Out: Config{
				MaxDepth:           DefaultMaxDepth,
				Prompt:             "> ",
				ContinuationPrompt: ". ",
				History:            "",
			},
		},
	}

	for i := range testCases {
		cfg, err := LoadConfig(strings.NewReader(testCases[i].In))
		require.NoError(t, err, "%q", testCases[i].In)
		assert.Equal(t, testCases[i].Out, cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	{
		_, err := LoadConfig(strings.NewReader("max_dept: 10\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decoding config")
	}

	{
		_, err := LoadConfig(strings.NewReader("max_depth: lots\n"))
		assert.Error(t, err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sexpr.yaml")

	require.NoError(t, os.WriteFile(path, []byte("max_depth: 12\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxDepth)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, os.WriteFile(path, []byte("bogus: 1\n"), 0o644))
	_, err = LoadConfigFile(path)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), path+": "))
}

func TestHistoryPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	{
		p, err := Config{History: "~/.sexpr_history"}.HistoryPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".sexpr_history"), p)
	}

	{
		p, err := Config{History: "/tmp/hist"}.HistoryPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/hist", p)
	}

	{
		p, err := Config{}.HistoryPath()
		require.NoError(t, err)
		assert.Equal(t, "", p)
	}
}
