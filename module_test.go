package credence_test

import (
	"path/filepath"
	"testing"

	"github.com/0xalexb/credence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewModule_SuppliesConfiguration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", "server:\n  host: localhost\n")

	load := credence.LoadConfig{
		Order: credence.Loaders(credence.Template(filepath.Join(dir, "{name}.{extension}"))),
	}

	var config *credence.Configuration

	app := fxtest.New(t,
		credence.NewModule("app", credence.WithLoadConfig(load)),
		fx.Invoke(
			fx.Annotate(
				func(cfg *credence.Configuration) { config = cfg },
				fx.ParamTags(`name:"app"`),
			),
		),
	)

	app.RequireStart()

	require.NotNil(t, config)

	host, err := config.Get("server.host")
	require.NoError(t, err)
	assert.Equal(t, "localhost", host)

	app.RequireStop()
}

func TestNewModule_TwoModules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "api.yaml", "name: api\n")
	writeFile(t, dir, "worker.yaml", "name: worker\n")

	load := credence.LoadConfig{
		Order: credence.Loaders(credence.Template(filepath.Join(dir, "{name}.{extension}"))),
	}

	var apiName, workerName any

	app := fxtest.New(t,
		credence.NewModule("api", credence.WithLoadConfig(load)),
		credence.NewModule("worker", credence.WithLoadConfig(load)),
		fx.Invoke(
			fx.Annotate(
				func(api, worker *credence.Configuration) error {
					var err error

					apiName, err = api.Get("name")
					if err != nil {
						return err
					}

					workerName, err = worker.Get("name")

					return err
				},
				fx.ParamTags(`name:"api"`, `name:"worker"`),
			),
		),
	)

	app.RequireStart()

	assert.Equal(t, "api", apiName)
	assert.Equal(t, "worker", workerName)

	app.RequireStop()
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(
		credence.NewModule(""),
		fx.NopLogger,
	)

	err := app.Err()
	require.Error(t, err, "should fail with empty name")
	assert.ErrorIs(t, err, credence.ErrEmptyName)
}

func TestNewModule_LoadFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.yaml", "key: [unclosed\n")

	load := credence.LoadConfig{
		Order: credence.Loaders(credence.Template(filepath.Join(dir, "{name}.{extension}"))),
	}

	app := fx.New(
		credence.NewModule("app", credence.WithLoadConfig(load)),
		fx.Invoke(
			fx.Annotate(
				func(_ *credence.Configuration) {},
				fx.ParamTags(`name:"app"`),
			),
		),
		fx.NopLogger,
	)

	assert.Error(t, app.Err(), "should surface the parse failure")
}
