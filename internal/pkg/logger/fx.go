package logger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// fxLogger reports fx lifecycle events as structured zerolog entries. Only
// failures and hook timings are logged above debug level.
type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.lifecycle").
			Logger(),
	}
}

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		l.hook(e.Err, "OnStart", e.FunctionName, e.CallerName, e.Runtime.String())
	case *fxevent.OnStopExecuted:
		l.hook(e.Err, "OnStop", e.FunctionName, e.CallerName, e.Runtime.String())
	case *fxevent.Supplied:
		l.failure(e.Err).Str("type", e.TypeName).Msg("supplied")
	case *fxevent.Provided:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("constructor", e.ConstructorName).Msg("provide failed")
			return
		}
		l.l.Debug().
			Str("constructor", e.ConstructorName).
			Str("types", strings.Join(e.OutputTypeNames, ", ")).
			Msg("provided")
	case *fxevent.Invoked:
		if e.Err != nil {
			l.l.Error().Err(e.Err).Str("function", e.FunctionName).Str("trace", e.Trace).Msg("invoke failed")
			return
		}
		l.l.Debug().Str("function", e.FunctionName).Msg("invoked")
	case *fxevent.Stopping:
		l.l.Info().Str("signal", strings.ToUpper(e.Signal.String())).Msg("received signal")
	case *fxevent.Stopped:
		l.failure(e.Err).Msg("stopped")
	case *fxevent.RollingBack:
		l.l.Error().Err(e.StartErr).Msg("start failed, rolling back")
	case *fxevent.RolledBack:
		l.failure(e.Err).Msg("rolled back")
	case *fxevent.Started:
		l.failure(e.Err).Msg("started")
	case *fxevent.LoggerInitialized:
		l.failure(e.Err).Str("constructor", e.ConstructorName).Msg("logger initialized")
	}
}

func (l *fxLogger) hook(err error, kind, function, caller, runtime string) {
	if err != nil {
		l.l.Error().Err(err).Str("callee", function).Str("caller", caller).Msg(kind + " hook failed")
		return
	}
	l.l.Info().Str("callee", function).Str("caller", caller).Str("runtime", runtime).Msg(kind + " hook executed")
}

func (l *fxLogger) failure(err error) *zerolog.Event {
	if err != nil {
		return l.l.Error().Err(err)
	}
	return l.l.Debug()
}
