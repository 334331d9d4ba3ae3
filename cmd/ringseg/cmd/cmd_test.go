package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseInches(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{"1.125", 1.125},
		{"3/4", 0.75},
		{"6-5/8", 6.625},
		{"6 5/8", 6.625},
		{"4\"", 4},
		{" 1-1/8 ", 1.125},
	} {
		got, err := parseInches(test.in)
		if err != nil {
			t.Fatalf("%q: %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("%q: got %g, want %g", test.in, got, test.want)
		}
	}
	for _, bad := range []string{"", "abc", "1-", "1-3", "3/0", "1/x"} {
		if _, err := parseInches(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestParseLayer(t *testing.T) {
	d, h, w, err := parseLayer("6-5/8,1-1/4,3/4")
	if err != nil {
		t.Fatal(err)
	}
	if d != 6.625 || h != 1.25 || w != 0.75 {
		t.Errorf("got %g %g %g", d, h, w)
	}
	if _, _, _, err = parseLayer("1,2"); err == nil {
		t.Error("two field layer accepted")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRingCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.svg")
	out, err := run(t, "ring", "--diameter", "6-5/8", "--wall", "3/4", "-n", "12", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"segments: 12\n",
		"degrees_per_segment: 30\n",
		"outer_segment_length: 1.7752 in\n",
		"inner_segment_length: 1.3264 in\n",
		"all_segments_length: 18.6097 in\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestRingCommandRejectsTwoSegments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.svg")
	_, err := run(t, "ring", "-n", "2", "-o", path)
	if err == nil || !strings.Contains(err.Error(), "invalid geometry") {
		t.Errorf("got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected ring was drawn")
	}
}

func TestFailedSaveWritesNoSummary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	for _, args := range [][]string{
		{"ring", "-n", "12", "-o", filepath.Join(missing, "ring.svg")},
		{"profile", "-o", filepath.Join(missing, "profile.svg")},
	} {
		out, err := run(t, args...)
		if err == nil || !strings.Contains(err.Error(), "saving") {
			t.Errorf("%s: got %v", args[0], err)
		}
		if out != "" {
			t.Errorf("%s: failed run printed:\n%s", args[0], out)
		}
	}
}

func TestProfileCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.svg")
	out, err := run(t, "profile", "-o", path, "--base-height", "1/2",
		"--layer", "5.5,1-1/8,1-3/8", "--layer", "6.5,1-1/8,1-3/8", "--layer", "6-5/8,1-1/4,3/4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "layer 2: radius=165.625 height=62.5 thickness=37.5 altitude=137.5\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}
