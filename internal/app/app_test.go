package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/primespectgo/internal/config"
)

// staticLoader returns a fixed model, standing in for the HCL loader.
type staticLoader struct {
	model *config.Model
	err   error
}

func (l *staticLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	return l.model, l.err
}

func TestNewApp_UsesReferenceModelWithoutPath(t *testing.T) {
	t.Parallel()

	appConfig, err := NewConfig(Config{})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, appConfig, &staticLoader{})
	require.Len(t, a.Model().Analyses, 1)
	require.Equal(t, config.DefaultBound, a.Model().Analyses[0].Bound)
}

func TestNewApp_PanicsOnLoaderError(t *testing.T) {
	t.Parallel()

	appConfig, err := NewConfig(Config{AnalysisPath: "some/path"})
	require.NoError(t, err)

	loader := &staticLoader{err: context.DeadlineExceeded}
	require.PanicsWithError(t,
		"failed to load configuration: context deadline exceeded",
		func() { NewApp(&bytes.Buffer{}, &bytes.Buffer{}, appConfig, loader) },
	)
}

func TestNewApp_PanicsOnInvalidModel(t *testing.T) {
	t.Parallel()

	appConfig, err := NewConfig(Config{AnalysisPath: "some/path"})
	require.NoError(t, err)

	loader := &staticLoader{model: &config.Model{
		Analyses: []*config.Analysis{{Name: "bad", Bound: -5}},
	}}
	require.Panics(t, func() { NewApp(&bytes.Buffer{}, &bytes.Buffer{}, appConfig, loader) })
}

func TestRun_WritesOneReportPerAnalysis(t *testing.T) {
	t.Parallel()

	appConfig, err := NewConfig(Config{AnalysisPath: "some/path", LogLevel: "debug"})
	require.NoError(t, err)

	loader := &staticLoader{model: &config.Model{
		Analyses: []*config.Analysis{
			{Name: "tiny", Bound: 2},
			{Name: "reference", Bound: 50},
		},
	}}

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, appConfig, loader)
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Maximum prime considered: 2\n")
	require.Contains(t, out.String(), "Maximum prime considered: 50\n")
	require.Contains(t, out.String(), "Support size: 15\n")
	require.Contains(t, logs.String(), "Analyzing support.")
}

func TestRun_EmptyModelIsANoOp(t *testing.T) {
	t.Parallel()

	appConfig, err := NewConfig(Config{AnalysisPath: "some/path"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	a := NewApp(out, logs, appConfig, &staticLoader{model: &config.Model{}})
	require.NoError(t, a.Run(context.Background()))

	require.Empty(t, out.String())
	require.Contains(t, logs.String(), "nothing to do")
}
