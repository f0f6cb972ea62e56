package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/wordclock/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func RunID(id string) slog.Attr {
	const runIDKey = "run_id"
	return slog.String(runIDKey, id)
}

func Mode(mode string) slog.Attr {
	const modeKey = "mode"
	return slog.String(modeKey, mode)
}

func Sink(kind string) slog.Attr {
	const sinkKey = "sink"
	return slog.String(sinkKey, kind)
}

func Modifiers(names []string) slog.Attr {
	const modifiersKey = "modifiers"
	return slog.Any(modifiersKey, names)
}

// Tokens logs a phrase such as "it is ten past three".
func Tokens(phrase string) slog.Attr {
	const tokensKey = "tokens"
	return slog.String(tokensKey, phrase)
}

func Counter(name string, value int) slog.Attr {
	return slog.Int(name, value)
}

func Capability(c string) slog.Attr {
	const capabilityKey = "gate"
	return slog.String(capabilityKey, c)
}

func GateOpen(open bool) slog.Attr {
	const gateOpenKey = "gate_open"
	return slog.Bool(gateOpenKey, open)
}

func Provider(name string) slog.Attr {
	const providerKey = "provider"
	return slog.String(providerKey, name)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}
