package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/gausscalc/internal/config"
	"github.com/agbru/gausscalc/internal/service"
)

// OutputConfig groups the presentation options for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result to (empty to skip).
	OutputFile string
	// Quiet selects the minimal machine-friendly output format.
	Quiet bool
	// Verbose disables truncation of long values.
	Verbose bool
}

// FormatQuietResult renders a result as a single machine-friendly line:
// the operation, the values joined by spaces, and the duration.
//
// Parameters:
//   - res: The evaluation result.
//   - duration: The evaluation duration.
//
// Returns:
//   - string: The formatted line.
func FormatQuietResult(res service.Result, duration time.Duration) string {
	return fmt.Sprintf("%s %s %s", res.Op, strings.Join(res.Values, " "), FormatExecutionDuration(duration))
}

// DisplayQuietResult writes the minimal output format for scripting.
//
// Parameters:
//   - out: The output writer.
//   - res: The evaluation result.
//   - duration: The evaluation duration.
func DisplayQuietResult(out io.Writer, res service.Result, duration time.Duration) {
	fmt.Fprintln(out, FormatQuietResult(res, duration))
}

// WriteResultToFile saves a result to the configured output file. The file
// carries a small header with the operation, operands, and duration so saved
// results remain self-describing.
//
// Parameters:
//   - res: The evaluation result.
//   - args: The operands that were evaluated.
//   - duration: The evaluation duration.
//   - cfg: The output configuration (must carry a non-empty OutputFile).
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res service.Result, args []string, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# gausscalc result\n")
	fmt.Fprintf(&b, "# operation: %s\n", res.Op)
	fmt.Fprintf(&b, "# operands: %s\n", strings.Join(args, ", "))
	fmt.Fprintf(&b, "# duration: %s\n", FormatExecutionDuration(duration))
	for _, v := range res.Values {
		fmt.Fprintln(&b, v)
	}
	return os.WriteFile(cfg.OutputFile, []byte(b.String()), 0o644)
}

// PrintExecutionConfig displays the current execution configuration to the
// user: the operation, timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	if cfg.Op != "" {
		fmt.Fprintf(out, "Evaluating %s%s%s(%s) with a timeout of %s%s%s.\n",
			ColorMagenta(), cfg.Op, ColorReset(), strings.Join(cfg.OperandList(), ", "),
			ColorYellow(), cfg.Timeout, ColorReset())
	} else {
		fmt.Fprintf(out, "Running the full demonstration with a timeout of %s%s%s.\n",
			ColorYellow(), cfg.Timeout, ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
}
