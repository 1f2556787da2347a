package perfdelta

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeResults creates a results directory holding a single gpu result file
// with the given data row.
func writeResults(t *testing.T, row string) string {
	t.Helper()
	dir := t.TempDir()
	content := "Concurrency,Latency,Inferences/Second\n" + row + "\n"
	if err := os.WriteFile(filepath.Join(dir, "gpu_r.csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// execute runs the root command with args and returns captured stdout and
// stderr along with the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCmd_MissingRequiredFlags(t *testing.T) {
	_, _, err := execute(t, "--latency")
	if err == nil {
		t.Fatal("expected an error for missing required flags, but got none")
	}
	if !strings.Contains(err.Error(), "required flag") {
		t.Errorf("error = %q, want a required-flag failure", err)
	}
}

func TestRootCmd_LatencyEndToEnd(t *testing.T) {
	baseline := writeResults(t, "1,10,100")
	undertest := writeResults(t, "1,8,125")

	out, _, err := execute(t,
		"--latency", "--concurrency", "1",
		"--baseline-name", "r1.0", "--baseline", baseline,
		"--undertest-name", "r1.1", "--undertest", undertest,
	)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "gpu") {
		t.Errorf("missing gpu section:\n%s", out)
	}
	// Latency 10 -> 8 and Inferences/Second 100 -> 125 are both +25%.
	if got := strings.Count(out, "25.00%"); got != 2 {
		t.Errorf("expected two 25.00%% deltas, found %d in:\n%s", got, out)
	}
}

func TestRootCmd_NoAnalysisRequested(t *testing.T) {
	baseline := writeResults(t, "1,10,100")
	undertest := writeResults(t, "1,8,125")

	out, _, err := execute(t,
		"--latency=false", "--throughput",
		"--baseline-name", "r1.0", "--baseline", baseline,
		"--undertest-name", "r1.1", "--undertest", undertest,
	)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("throughput analysis is reserved; expected no output, got:\n%s", out)
	}
}

func TestRootCmd_MissingBaselineDirectory(t *testing.T) {
	undertest := writeResults(t, "1,8,125")

	_, _, err := execute(t,
		"--latency",
		"--baseline-name", "r1.0", "--baseline", filepath.Join(t.TempDir(), "nope"),
		"--undertest-name", "r1.1", "--undertest", undertest,
	)
	if err == nil {
		t.Fatal("expected an error for an unreadable baseline directory, but got none")
	}
}

func TestRootCmd_VerboseLeavesReportIntact(t *testing.T) {
	baseline := writeResults(t, "1,10,100")
	undertest := writeResults(t, "1,8,125")

	out, errOut, err := execute(t,
		"--latency", "--verbose",
		"--baseline-name", "r1.0", "--baseline", baseline,
		"--undertest-name", "r1.1", "--undertest", undertest,
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "25.00%"); got != 2 {
		t.Errorf("verbose must not change the report; found %d deltas in:\n%s", got, out)
	}
	if errOut == "" {
		t.Error("expected a verbose options dump on stderr")
	}
}
