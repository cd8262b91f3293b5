package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/recount-go/recount/pkg/clierr"
	"github.com/recount-go/recount/pkg/recount"
)

// capture redirects the package output streams to buffers for one test.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return out, errOut
}

func TestStatus(t *testing.T) {
	t.Run("label is right-aligned to twelve columns", func(t *testing.T) {
		out, _ := capture(t)
		Status("Created", "binary (application) `spacetime` package", Green)
		want := "     Created binary (application) `spacetime` package\n"
		if got := out.String(); got != want {
			t.Errorf("Status() output = %q, want %q", got, want)
		}
	})
	t.Run("long labels are not truncated", func(t *testing.T) {
		out, _ := capture(t)
		Status("Downloading!!", "sources", Cyan)
		want := "Downloading!! sources\n"
		if got := out.String(); got != want {
			t.Errorf("Status() output = %q, want %q", got, want)
		}
	})
	t.Run("writes to stdout only", func(t *testing.T) {
		out, errOut := capture(t)
		Status("Adding", "dependency", Cyan)
		if out.Len() == 0 {
			t.Errorf("Status() wrote nothing to stdout")
		}
		if errOut.Len() != 0 {
			t.Errorf("Status() wrote to stderr: %q", errOut.String())
		}
	})
}

func TestErr(t *testing.T) {
	t.Run("nil prints nothing", func(t *testing.T) {
		_, errOut := capture(t)
		Err(nil)
		if errOut.Len() != 0 {
			t.Errorf("Err(nil) output = %q, want empty", errOut.String())
		}
	})
	t.Run("title line only", func(t *testing.T) {
		_, errOut := capture(t)
		Err(recount.Wrap(errors.New("file not found"), "cannot load config"))
		want := "error: cannot load config\n"
		if got := errOut.String(); got != want {
			t.Errorf("Err() output = %q, want %q", got, want)
		}
	})
	t.Run("help follows after one blank line", func(t *testing.T) {
		_, errOut := capture(t)
		err := recount.AddHelp(recount.New("invalid configuration"), "see https://example.com/docs")
		Err(err)
		want := "error: invalid configuration\n\nsee https://example.com/docs\n"
		if got := errOut.String(); got != want {
			t.Errorf("Err() output = %q, want %q", got, want)
		}
	})
	t.Run("only outermost help is shown", func(t *testing.T) {
		_, errOut := capture(t)
		inner := recount.AddHelp(recount.New("inner error"), "inner help")
		Err(recount.Wrap(inner, "outer error"))
		want := "error: outer error\n"
		if got := errOut.String(); got != want {
			t.Errorf("Err() output = %q, want %q", got, want)
		}
	})
	t.Run("writes to stderr only", func(t *testing.T) {
		out, errOut := capture(t)
		Err(errors.New("boom"))
		if errOut.Len() == 0 {
			t.Errorf("Err() wrote nothing to stderr")
		}
		if out.Len() != 0 {
			t.Errorf("Err() wrote to stdout: %q", out.String())
		}
	})
}

func TestErrFull(t *testing.T) {
	t.Run("nil prints nothing", func(t *testing.T) {
		_, errOut := capture(t)
		ErrFull(nil)
		if errOut.Len() != 0 {
			t.Errorf("ErrFull(nil) output = %q, want empty", errOut.String())
		}
	})
	t.Run("one cause line per link", func(t *testing.T) {
		_, errOut := capture(t)
		root := errors.New("file not found")
		ErrFull(recount.Wrap(recount.Wrap(root, "cannot load config"), "startup failed"))
		want := "error: startup failed\n" +
			"cause: cannot load config\n" +
			"cause: file not found\n"
		if diff := cmp.Diff(want, errOut.String()); diff != "" {
			t.Errorf("ErrFull() output mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("catalog entry becomes the title", func(t *testing.T) {
		_, errOut := capture(t)
		err := recount.Wrap(errors.New("file not found"), "cannot load config")
		err = recount.WrapErr(err, clierr.ErrConfig)
		err = recount.AddHelp(err, "see https://example.com/docs")
		ErrFull(err)
		want := "error: invalid configuration\n" +
			"cause: cannot load config\n" +
			"cause: file not found\n" +
			"\n" +
			"see https://example.com/docs\n"
		if diff := cmp.Diff(want, errOut.String()); diff != "" {
			t.Errorf("ErrFull() output mismatch (-want +got):\n%s", diff)
		}
		if got := clierr.ExitCode(err); got != clierr.ExitConfig {
			t.Errorf("ExitCode(err) = %d, want %d", got, clierr.ExitConfig)
		}
	})
	t.Run("deepest help renders first, each after a blank line", func(t *testing.T) {
		_, errOut := capture(t)
		inner := recount.AddHelp(recount.New("inner error"), "inner help")
		outer := recount.AddHelp(recount.Wrap(inner, "outer error"), "outer help")
		ErrFull(outer)
		want := "error: outer error\n" +
			"cause: inner error\n" +
			"\n" +
			"inner help\n" +
			"\n" +
			"outer help\n"
		if diff := cmp.Diff(want, errOut.String()); diff != "" {
			t.Errorf("ErrFull() output mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("foreign error chains render too", func(t *testing.T) {
		_, errOut := capture(t)
		ErrFull(fmt.Errorf("outer: %w", errors.New("root")))
		want := "error: outer: root\n" +
			"cause: root\n"
		if diff := cmp.Diff(want, errOut.String()); diff != "" {
			t.Errorf("ErrFull() output mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestWriteStatus_Styled(t *testing.T) {
	var buf bytes.Buffer
	writeStatus(&buf, "Created", "package", Green, true)
	got := buf.String()

	// Styled output depends on the terminal library; pin only the parts
	// that must survive styling.
	if !strings.Contains(got, "Created") {
		t.Errorf("styled output %q does not contain the label", got)
	}
	if !strings.HasSuffix(got, " package\n") {
		t.Errorf("styled output %q does not end with the message", got)
	}
}

func TestWriteTitle_Styled(t *testing.T) {
	var buf bytes.Buffer
	writeTitle(&buf, "boom", true)
	got := buf.String()

	if !strings.Contains(got, "error") {
		t.Errorf("styled title %q does not contain the title word", got)
	}
	if !strings.HasSuffix(got, " boom\n") {
		t.Errorf("styled title %q does not end with the message", got)
	}
}

func TestStyledFor(t *testing.T) {
	if styledFor(&bytes.Buffer{}) {
		t.Errorf("styledFor(buffer) = true, want false")
	}
	// The process streams may or may not be terminals depending on the
	// environment; the probe only has to hold its answer steady.
	if styledFor(stdout) != styledFor(stdout) {
		t.Errorf("styledFor(stdout) is not stable")
	}
}
