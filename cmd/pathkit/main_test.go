package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSingleCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"join"}, ".\n"},
		{[]string{"join", "a", "", "b"}, "a/b\n"},
		{[]string{"join", "/a/", "/b"}, "/a/b\n"},
		{[]string{"join", "it's", "here"}, "it's/here\n"},
		{[]string{"join", "my dir", "f"}, "my dir/f\n"},
		{[]string{"basename", "/x/y.txt"}, "y.txt\n"},
		{[]string{"--cwd", "/srv/app", "resolve", "../db"}, "/srv/db\n"},
		{[]string{"--json", "dirname", "/x/y"}, "{\n  \"command\": \"dirname\",\n  \"result\": \"/x\"\n}\n"},
	}

	for _, tt := range tests {
		code, out, errOut := runArgs(tt.args...)
		assert.Equal(t, 0, code, "%q: stderr=%s", tt.args, errOut)
		assert.Equal(t, tt.want, out, "%q", tt.args)
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runArgs("--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "pathkit dev\n", out)
}

func TestRunErrors(t *testing.T) {
	code, _, errOut := runArgs("--bogus-flag")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "bogus-flag")

	code, _, errOut = runArgs("--store", "etcd", "join", "a")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid store")

	code, _, errOut = runArgs("frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown command: frobnicate")

	code, _, errOut = runArgs("mark", "show", "nothing")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "bookmark not found")
}

func TestQuoteArgs(t *testing.T) {
	assert.Equal(t, `'join' '' 'a b' 'it'\''s'`, quoteArgs([]string{"join", "", "a b", "it's"}))
}
