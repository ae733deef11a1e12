package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/invobs/pkg/inventory"
	"github.com/mesh-intelligence/invobs/pkg/types"
)

const testRunID = "0b6e1f0e-5d55-4c4a-9f39-2f4c3d1e8a77"

// cliResult captures one CLI invocation.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runCLI executes a fresh command tree against configDir.
func runCLI(t *testing.T, configDir, stdin string, args ...string) cliResult {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config-dir", configDir}, args...))
	err := cmd.Execute()
	return cliResult{Stdout: out.String(), Stderr: errOut.String(), Err: err}
}

// parseRecords decodes translate output.
func parseRecords(t *testing.T, out string) []tickRecord {
	t.Helper()
	var recs []tickRecord
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var rec tickRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		recs = append(recs, rec)
	}
	return recs
}

func TestVersion(t *testing.T) {
	res := runCLI(t, t.TempDir(), "", "version")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "invobs v"+version)
	assert.Contains(t, res.Stdout, modulePath)
}

func TestInitWritesConfigOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")

	res := runCLI(t, dir, "", "init", "--items", "log,dirt")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Wrote")

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "flavor: flat")
	assert.Contains(t, string(data), "- log")

	res = runCLI(t, dir, "", "init", "--items", "stone")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Config already exists")

	res = runCLI(t, dir, "", "vocab")
	require.NoError(t, res.Err)
	assert.Equal(t, "dirt\nlog\n", res.Stdout)
}

func TestInitRejectsInvalidVocabulary(t *testing.T) {
	dir := t.TempDir()
	res := runCLI(t, dir, "", "init", "--items", "log,log")
	assert.ErrorIs(t, res.Err, types.ErrDuplicateKey)

	_, err := os.Stat(filepath.Join(dir, configFileExt))
	assert.True(t, os.IsNotExist(err))
}

func TestVocabDefaults(t *testing.T) {
	res := runCLI(t, t.TempDir(), "", "vocab")
	require.NoError(t, res.Err)
	assert.Equal(t, strings.Join(defaultItems, "\n")+"\n", res.Stdout)
}

func TestVocabJSON(t *testing.T) {
	res := runCLI(t, t.TempDir(), "", "vocab", "--json", "--flavor", "variant", "--items", "log#1,log#0", "--use-variants")
	require.NoError(t, res.Err)

	var space inventory.Space
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &space))
	assert.Equal(t, []string{"log#0", "log#1"}, space.Keys)
	assert.Equal(t, inventory.SpaceHigh, space.High)
	assert.Equal(t, inventory.ObservationName, space.Name)
}

func TestVocabFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "flavor: variant\nuse_variants: true\nitems:\n  - wool#3\n  - log#0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(cfg), 0o644))

	res := runCLI(t, dir, "", "vocab")
	require.NoError(t, res.Err)
	assert.Equal(t, "log#0\nwool#3\n", res.Stdout)

	// Flags override the file.
	res = runCLI(t, dir, "", "vocab", "--flavor", "flat", "--items", "dirt")
	require.NoError(t, res.Err)
	assert.Equal(t, "dirt\n", res.Stdout)
}

func TestVocabItemsFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"comma separated", "planks,log", "log\nplanks\n"},
		{"space separated", "planks log", "log\nplanks\n"},
		{"comma and space", "planks, log", "log\nplanks\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("INVOBS_ITEMS", tt.env)
			res := runCLI(t, t.TempDir(), "", "vocab")
			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, res.Stdout)
		})
	}
}

func TestSplitItems(t *testing.T) {
	assert.Equal(t, []string{"log", "dirt", "stone"}, splitItems([]string{"log,dirt", " stone ", ""}))
	assert.Empty(t, splitItems(nil))
}

func TestVocabInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("items: [unterminated"), 0o644))

	res := runCLI(t, dir, "", "vocab")
	require.Error(t, res.Err)
	assert.Equal(t, exitSysError, exitCode(res.Err))
}

func TestTranslateUniversal(t *testing.T) {
	input := strings.Join([]string{
		`{"slots":{"gui":{"type":"player","slots":[{"name":"minecraft:air","count":0},{"name":"minecraft:log","count":3},{"name":"minecraft:log2","count":2}]}}}`,
		``,
		`not json`,
		`{"inventory":[]}`,
		`{"slots":{"gui":{"type":"furnace","slots":[{"name":"minecraft:log","count":1},{"name":"minecraft:coal","count":4},{"name":"minecraft:log","count":9},{"name":"minecraft:log","count":2}]}}}`,
	}, "\n")

	res := runCLI(t, t.TempDir(), input, "translate", "--items", "log,coal", "--run-id", testRunID)
	require.NoError(t, res.Err)

	recs := parseRecords(t, res.Stdout)
	require.Len(t, recs, 4)
	for i, rec := range recs {
		assert.Equal(t, testRunID, rec.RunID)
		assert.Equal(t, i, rec.Tick)
		assert.Nil(t, rec.Vector)
	}
	assert.Equal(t, inventory.Counts{"coal": 0, "log": 5}, recs[0].Inventory)
	assert.Equal(t, inventory.Counts{"coal": 0, "log": 0}, recs[1].Inventory)
	assert.Equal(t, inventory.Counts{"coal": 0, "log": 0}, recs[2].Inventory)
	assert.Equal(t, inventory.Counts{"coal": 4, "log": 3}, recs[3].Inventory)
	assert.Contains(t, res.Stderr, "yielding empty inventory")
}

func TestTranslateBlankLinesTakeNoTick(t *testing.T) {
	input := "\n" + `{"inventory":[{"type":"log","quantity":1}]}` + "\n\n\n" + `{"inventory":[{"type":"log","quantity":2}]}` + "\n"

	res := runCLI(t, t.TempDir(), input, "translate", "--mode", "hero", "--items", "log", "--run-id", testRunID)
	require.NoError(t, res.Err)

	recs := parseRecords(t, res.Stdout)
	require.Len(t, recs, 2)
	assert.Equal(t, 0, recs[0].Tick)
	assert.Equal(t, inventory.Counts{"log": 1}, recs[0].Inventory)
	assert.Equal(t, 1, recs[1].Tick)
	assert.Equal(t, inventory.Counts{"log": 2}, recs[1].Inventory)
}

func TestTranslateHeroFromFileWithVector(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "events.jsonl")
	events := `{"inventory":[{"type":"planks","quantity":4},{"type":"log","quantity":1},{"type":"air","quantity":0}]}` + "\n"
	require.NoError(t, os.WriteFile(input, []byte(events), 0o644))

	res := runCLI(t, dir, "", "translate", "--mode", "hero", "--items", "planks,log,air", "--vector", input)
	require.NoError(t, res.Err)

	recs := parseRecords(t, res.Stdout)
	require.Len(t, recs, 1)
	assert.Equal(t, inventory.Counts{"air": 1, "log": 1, "planks": 4}, recs[0].Inventory)
	assert.Equal(t, []int{1, 1, 4}, recs[0].Vector)
	assert.NotEmpty(t, recs[0].RunID)
}

func TestTranslateGeneratesRunID(t *testing.T) {
	input := `{"inventory":[]}` + "\n" + `{"inventory":[]}` + "\n"
	res := runCLI(t, t.TempDir(), input, "translate", "--mode", "hero", "--items", "log")
	require.NoError(t, res.Err)

	recs := parseRecords(t, res.Stdout)
	require.Len(t, recs, 2)
	assert.Len(t, recs[0].RunID, 36)
	assert.Equal(t, recs[0].RunID, recs[1].RunID)
}

func TestTranslateErrors(t *testing.T) {
	dir := t.TempDir()

	res := runCLI(t, dir, "", "translate", "--mode", "replay")
	require.Error(t, res.Err)
	assert.Equal(t, exitUserError, exitCode(res.Err))

	res = runCLI(t, dir, "", "translate", "--run-id", "tick-1")
	require.Error(t, res.Err)
	assert.Equal(t, exitUserError, exitCode(res.Err))

	res = runCLI(t, dir, "", "translate", "--items", "log#0")
	assert.ErrorIs(t, res.Err, types.ErrInvalidKey)

	res = runCLI(t, dir, "", "translate", filepath.Join(dir, "missing.jsonl"))
	require.Error(t, res.Err)
	assert.Equal(t, exitSysError, exitCode(res.Err))
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()

	res := runCLI(t, dir, "", "merge", "--items", "log,dirt", "--with", "planks,log")
	require.NoError(t, res.Err)
	assert.Equal(t, "dirt\nlog\nplanks\n", res.Stdout)

	res = runCLI(t, dir, "", "merge", "--items", "log", "--with", "log#0", "--with-flavor", "variant")
	assert.ErrorIs(t, res.Err, types.ErrTypeMismatch)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(errors.New("bad flag")))
	assert.Equal(t, exitSysError, exitCode(sysErr(errors.New("disk full"))))
	assert.Nil(t, sysErr(nil))
}
