// Translate command converts a stream of dumps into count records.
package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/invobs/pkg/inventory"
)

// maxDumpBytes bounds a single JSON Lines record. Universal snapshots carry
// every loaded block and entity and run to several megabytes.
const maxDumpBytes = 64 << 20

// tickRecord is one line of translate output.
type tickRecord struct {
	RunID     string           `json:"run_id"`
	Tick      int              `json:"tick"`
	Inventory inventory.Counts `json:"inventory"`
	Vector    []int            `json:"vector,omitempty"`
}

func newTranslateCmd(st *cliState) *cobra.Command {
	var (
		mode   string
		runID  string
		vector bool
	)

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate JSON Lines dumps into inventory counts",
		Long: `Translate reads one dump per line from file, or stdin when no file is given,
and writes one JSON record per tick:

  {"run_id": "...", "tick": 0, "inventory": {"dirt": 3, "log": 0}}

Ticks count non-blank lines from 0. Blank lines are skipped and do not take a
tick number. Lines that are not JSON objects are logged and reported as empty
inventories, so they keep their tick.

Example:
  invobs translate --mode universal univ.jsonl
  invobs translate --mode hero --items log,planks --vector < events.jsonl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != inventory.ModeHero && mode != inventory.ModeUniversal {
				return fmt.Errorf("unknown mode %q (valid: %s, %s)", mode, inventory.ModeHero, inventory.ModeUniversal)
			}
			if runID == "" {
				runID = uuid.NewString()
			} else if _, err := uuid.Parse(runID); err != nil {
				return fmt.Errorf("invalid --run-id %q: %w", runID, err)
			}

			tr, err := st.translator()
			if err != nil {
				return fmt.Errorf("build translator: %w", err)
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return sysErr(fmt.Errorf("open input: %w", err))
				}
				defer f.Close()
				in = f
			}

			t := &tickTranslator{tr: tr, mode: mode, runID: runID, vector: vector, st: st}
			return t.run(in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", inventory.ModeUniversal, "dump format: hero or universal")
	cmd.Flags().StringVar(&runID, "run-id", "", "run identifier stamped on every record (default: random UUID)")
	cmd.Flags().BoolVar(&vector, "vector", false, "also emit counts in vocabulary order")
	return cmd
}

// tickTranslator streams dumps through a translator.
type tickTranslator struct {
	tr     inventory.Translator
	mode   string
	runID  string
	vector bool
	st     *cliState
}

func (t *tickTranslator) run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDumpBytes)
	enc := json.NewEncoder(out)

	tick := 0
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		counts, err := t.translate(line)
		if err != nil {
			t.st.logger.Warn("yielding empty inventory", "tick", tick, "error", err)
			counts = t.tr.NoOp()
		}

		rec := tickRecord{RunID: t.runID, Tick: tick, Inventory: counts}
		if t.vector {
			rec.Vector = t.tr.Vocabulary().Vector(counts)
		}
		if err := enc.Encode(rec); err != nil {
			return sysErr(fmt.Errorf("write tick %d: %w", tick, err))
		}
		tick++
	}
	if err := scanner.Err(); err != nil {
		return sysErr(fmt.Errorf("read input: %w", err))
	}
	return nil
}

// translate decodes one dump and counts it.
func (t *tickTranslator) translate(line []byte) (inventory.Counts, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var dump map[string]any
	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode dump: %w", err)
	}
	return inventory.Translate(t.tr, t.mode, dump)
}
