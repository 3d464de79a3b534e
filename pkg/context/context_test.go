package context

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
)

func TestInitContext_FlagsOverrideConfig(t *testing.T) {
	fsop.SetMemMapFs()
	t.Cleanup(fsop.SetOsFs)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	require.NoError(t, fsop.API().WriteFile("/cfg/wcagcheck.yaml", []byte("app:\n  verbose: false\naudit:\n  source: theme.css\n"), 0o644))

	ctx, err := InitContext(context.Background(), GlobalFlags{ConfigPath: "/cfg/wcagcheck.yaml", Quiet: true})
	require.NoError(t, err)

	assert.True(t, ctx.Config.App.Quiet)
	assert.Equal(t, "theme.css", ctx.Config.Audit.Source)
	assert.Equal(t, "/cfg/wcagcheck.yaml", ctx.Viper.ConfigFileUsed())
	assert.NotNil(t, ctx.Logger)
}

func TestInitContext_BadConfig(t *testing.T) {
	fsop.SetMemMapFs()
	t.Cleanup(fsop.SetOsFs)

	_, err := InitContext(context.Background(), GlobalFlags{ConfigPath: "/missing.yaml"})
	assert.Error(t, err)
}
