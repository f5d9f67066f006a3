package config

const (
	defaultLogDir           = "~/.local/share/mirrorsort/logs"
	defaultStateDir         = "~/.local/state/mirrorsort"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
	defaultOnMoveError      = OnMoveErrorAbort
)

// Move failure policies accepted by mirror.on_move_error.
const (
	OnMoveErrorAbort = "abort"
	OnMoveErrorSkip  = "skip"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Mirror: Mirror{
			OnMoveError: defaultOnMoveError,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
