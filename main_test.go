package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCompileCommand(t *testing.T) {
	out, err := execute(t, "compile", "testdata/submission.json")
	require.NoError(t, err)

	assert.Contains(t, out, "# Build Habit Hero - iOS App")
	assert.Contains(t, out, "@Environment(\\.colorScheme)")
	assert.Contains(t, out, "Image queries:\n- minimal nature zen\n- peaceful meditation\n- calm minimal\n")
}

func TestCompileCommand_Errors(t *testing.T) {
	_, err := execute(t, "compile", "testdata/missing.json")
	assert.ErrorContains(t, err, "read submission")

	_, err = execute(t, "compile")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "designkit version "+Version+"\n", out)
}
