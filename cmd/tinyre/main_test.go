package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantCode int
		wantOut  string
	}{
		{"match", []string{"a(b|c)d", "abd"}, "", exitMatch, "true\n"},
		{"no match", []string{"a(b|c)d", "axd"}, "", exitNoMatch, "false\n"},
		{"any of several", []string{"ab+", "x", "abb", "y"}, "", exitMatch, "false\ntrue\nfalse\n"},
		{"stdin lines", []string{"foo|bar"}, "nope\nbarn\n", exitMatch, "false\ntrue\n"},
		{"stdin empty", []string{"foo"}, "", exitNoMatch, ""},
		{
			"dump",
			[]string{"-dump", "a*", "x"},
			"",
			exitMatch,
			"ast: Seq(Star(a))\n0: split 1, 3\n1: char 'a'\n2: jmp 0\n3: match\ntrue\n",
		},
		{
			"verbose",
			[]string{"-v", "ab", "xab"},
			"",
			exitMatch,
			"strategy: UseFirstByte\ntrue\nstats: empty=0 literal=0 prefilter=1 backtrack=0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.stdin, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, errOut)
			}
			if out != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no pattern", nil, "usage: tinyre"},
		{"bad flag", []string{"-nope", "a"}, "flag provided but not defined"},
		{"bad pattern", []string{"a|*", "x"}, "tinyre: error parsing pattern: missing argument"},
		{"unclosed group", []string{"(a", "x"}, "missing closing )"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, "", tt.args...)
			if code != exitError {
				t.Errorf("exit code = %d, want %d", code, exitError)
			}
			if out != "" {
				t.Errorf("stdout = %q, want empty", out)
			}
			if !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", errOut, tt.wantErr)
			}
		})
	}
}
