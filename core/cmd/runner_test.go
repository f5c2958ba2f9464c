package cmd

import (
	"context"
	"errors"
	"testing"

	coreconfig "github.com/m3rciful/tynys/core/config"
	coretelegram "github.com/m3rciful/tynys/core/telegram"
	"github.com/m3rciful/tynys/core/telegram/sender"
)

type testConfig struct{ core coreconfig.Config }

func (c *testConfig) CoreConfig() *coreconfig.Config { return &c.core }

type testApp struct {
	started, closed bool
	closeErr        error
}

func (a *testApp) TelegramRunOptions() (coretelegram.RunOptions, error) {
	return coretelegram.RunOptions{
		OnStart: func(context.Context, coretelegram.Runtime) error {
			a.started = true
			return nil
		},
	}, nil
}

func (a *testApp) Close() error {
	a.closed = true
	return a.closeErr
}

func fakeRuntime(ctx context.Context, opts coretelegram.RunOptions) error {
	d := sender.NewDispatcher(sender.Options{Workers: 1})
	defer d.Close()
	rt := coretelegram.Runtime{Registry: coretelegram.NewRegistry(), Dispatcher: d, RunMode: "longpoll"}
	if err := opts.OnStart(ctx, rt); err != nil {
		return err
	}
	return opts.OnStop(ctx, rt)
}

func TestRunLifecycle(t *testing.T) {
	app := &testApp{}
	var loaded string
	err := run(context.Background(), Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (ConfigCarrier, error) {
			loaded = path
			return &testConfig{}, nil
		},
		Bootstrap:   func(context.Context, ConfigCarrier) (TelegramApp, error) { return app, nil },
		RunTelegram: fakeRuntime,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if loaded != "config.yaml" || !app.started || !app.closed {
		t.Fatalf("loaded = %q, started = %v, closed = %v", loaded, app.started, app.closed)
	}
}

func TestRunConfigPathFromEnv(t *testing.T) {
	t.Setenv("TYNYS_CONFIG", "/etc/tynys.yaml")
	var loaded string
	_ = run(context.Background(), Options{
		ConfigEnvVar: "TYNYS_CONFIG",
		LoadConfig: func(path string) (ConfigCarrier, error) {
			loaded = path
			return nil, errors.New("stop")
		},
		Bootstrap: func(context.Context, ConfigCarrier) (TelegramApp, error) { return nil, nil },
	})
	if loaded != "/etc/tynys.yaml" {
		t.Fatalf("loaded = %q", loaded)
	}
}

func TestRunReportsCloseError(t *testing.T) {
	closeErr := errors.New("db close")
	err := run(context.Background(), Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig:        func(string) (ConfigCarrier, error) { return &testConfig{}, nil },
		Bootstrap: func(context.Context, ConfigCarrier) (TelegramApp, error) {
			return &testApp{closeErr: closeErr}, nil
		},
		RunTelegram: fakeRuntime,
	})
	if !errors.Is(err, closeErr) {
		t.Fatalf("err = %v, want close error", err)
	}
}

func TestRunRequiresPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	err := run(context.Background(), Options{
		LoadConfig: func(string) (ConfigCarrier, error) { return &testConfig{}, nil },
		Bootstrap:  func(context.Context, ConfigCarrier) (TelegramApp, error) { return &testApp{}, nil },
	})
	if err == nil {
		t.Fatal("expected missing path error")
	}
}
