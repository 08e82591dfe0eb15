package scheduling

import "github.com/rs/zerolog"

// A CommandLogger is a hook that writes one log line per command firing and,
// at debug level, per skipped firing.
type CommandLogger struct {
	logger zerolog.Logger
}

// NewCommandLogger returns a new CommandLogger which will write to the given
// logger.
func NewCommandLogger(logger zerolog.Logger) *CommandLogger {
	h := new(CommandLogger)
	h.logger = logger
	return h
}

// Func writes the firing information into the logger.
func (h *CommandLogger) Func(ctx HookCtx) {
	info, ok := ctx.Item.(CommandInfo)
	if !ok {
		return
	}

	switch ctx.Pos {
	case HookPosAfterCommand:
		h.logger.Info().
			Str("stream", info.Stream).
			Str("command", info.CommandID).
			Float64("time", float64(info.Time)).
			Float64("next_due", float64(info.NextDueTime)).
			Float64("gap", float64(info.LastGap)).
			Uint64("count", info.TimesExecuted).
			Msg("command fired")
	case HookPosCommandSkip:
		h.logger.Debug().
			Str("stream", info.Stream).
			Str("command", info.CommandID).
			Float64("time", float64(info.Time)).
			Msg("command skipped")
	}
}
