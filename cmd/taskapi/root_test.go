package main

import (
	"bytes"
	"testing"

	"github.com/NeuralTrust/TaskAPI/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version.AppName+" "+version.Version)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "migrate", "seed", "version"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}
