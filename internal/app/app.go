package app

import (
	"os"
	"os/signal"
	"syscall"

	runtime "github.com/banzaicloud/logrus-runtime-formatter"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// App holds attributes for the hwmanager application
type App struct {
	// Viper loads configuration parameters.
	v *viper.Viper
	// fs is the filesystem the configuration file is read from.
	fs afero.Fs
	// hwmanager configuration.
	Config *model.Config
	// Logger is the app logger
	Logger *logrus.Logger
}

// New returns a new instance of the hwmanager app
func New(appKind model.AppKind, cfgFile string, loglevel int) (*App, <-chan os.Signal, error) {
	app := &App{
		v:      viper.New(),
		fs:     afero.NewOsFs(),
		Config: &model.Config{AppKind: appKind},
		Logger: logrus.New(),
	}

	if err := app.LoadConfiguration(cfgFile); err != nil {
		return nil, nil, err
	}

	switch loglevel {
	case model.LogLevelDebug:
		app.Logger.Level = logrus.DebugLevel
	case model.LogLevelTrace:
		app.Logger.Level = logrus.TraceLevel
	default:
		app.Logger.Level = logLevelFromConfig(app.Config.LogLevel)
	}

	app.Logger.SetFormatter(
		&runtime.Formatter{ChildFormatter: &logrus.JSONFormatter{}},
	)

	termCh := make(chan os.Signal, 1)

	// register for SIGINT, SIGTERM
	signal.Notify(termCh, syscall.SIGINT, syscall.SIGTERM)

	return app, termCh, nil
}

func logLevelFromConfig(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}
