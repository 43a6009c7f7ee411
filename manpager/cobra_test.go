package manpager

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCommand(t *testing.T) {
	root := &cobra.Command{Use: "mytool", Short: "does tool things", Long: "A longer account of the tool."}
	root.Flags().StringP("config", "c", "mytool.conf", "configuration file")
	root.Flags().Bool("debug", false, "enable debug output")
	root.Flags().Bool("internal", false, "not for users")
	require.NoError(t, root.Flags().MarkHidden("internal"))
	require.NoError(t, root.MarkFlagRequired("config"))
	root.AddCommand(&cobra.Command{Use: "serve", Short: "run the server", Run: func(*cobra.Command, []string) {}})
	root.AddCommand(&cobra.Command{Use: "completion", Run: func(*cobra.Command, []string) {}})

	spec, err := Introspect(FromCommand(root))
	require.NoError(t, err)

	assert.Equal(t, "mytool", spec.Name)
	assert.Equal(t, "does tool things", spec.Short)
	assert.Equal(t, "A longer account of the tool.", spec.Long)

	require.Len(t, spec.Args, 2, "hidden flags must be skipped")
	config := spec.Args[0]
	assert.Equal(t, "--config", config.Name)
	assert.Equal(t, []string{"-c", "--config"}, config.Aliases)
	assert.True(t, config.TakesValue)
	assert.True(t, config.Required)
	assert.Equal(t, "mytool.conf", config.Default)
	debug := spec.Args[1]
	assert.Equal(t, "--debug", debug.Name)
	assert.False(t, debug.TakesValue)
	assert.Empty(t, debug.Default)

	require.Len(t, spec.Commands, 1, "completion must not be documented")
	assert.Equal(t, "serve", spec.Commands[0].Name)
}

func TestFromCommandDeclarationOrder(t *testing.T) {
	cmd := &cobra.Command{Use: "ordered", Short: "keeps order"}
	cmd.Flags().Bool("zeta", false, "declared first")
	cmd.Flags().Bool("alpha", false, "declared second")
	spec, err := Introspect(FromCommand(cmd))
	require.NoError(t, err)
	require.Len(t, spec.Args, 2)
	assert.Equal(t, "--zeta", spec.Args[0].Name)
	assert.Equal(t, "--alpha", spec.Args[1].Name)
	assert.True(t, cmd.Flags().SortFlags, "the sort setting must be restored after the walk")
}
