package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const AppName = "userecho"

type App struct {
	Log  *zap.Logger
	Cfg  *Configuration
	ctx  context.Context
	term chan os.Signal
}

// NewApp composes the provided Configuration and Logger into a new App object
func NewApp(ctx context.Context, cfg *Configuration, log *zap.Logger) *App {
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	return &App{
		Log:  log,
		Cfg:  cfg,
		ctx:  ctx,
		term: termChan,
	}
}

// WaitForSignal blocks until we catch SIGTERM or SIGINT, or the App's context
// is canceled.
func (a *App) WaitForSignal() {
	defer signal.Stop(a.term)

	select {
	case <-a.term:
	case <-a.ctx.Done():
	}
}

// LoadConfiguration applies defaults, the optional configuration file and then
// any environmental overrides, in that order of precedence.
func LoadConfiguration(cfgFile string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		fh, err := os.Open(cfgFile)
		if err != nil {
			return nil, errors.Wrap(err, "opening config file "+cfgFile)
		}
		defer fh.Close()

		if err = v.ReadConfig(fh); err != nil {
			return nil, errors.Wrap(err, "reading config "+cfgFile)
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := sanityCheck(cfg); err != nil {
		return nil, errors.Wrap(err, "checking configuration")
	}

	return cfg, nil
}

func sanityCheck(cfg *Configuration) error {
	if cfg.ListenAddress == "" {
		return errors.New("no listen address set")
	}

	if cfg.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}

	return nil
}

// GetLogger constructs a new logger for composition within an App
func GetLogger(dev bool) *zap.Logger {
	if dev {
		return zap.Must(zap.NewDevelopment(
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		))
	}
	return zap.Must(zap.NewProduction(
		zap.AddCaller(),
	)).With(zap.String("app", AppName))
}
