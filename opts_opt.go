package opts

// EnvLookup resolves an environment variable. Injectable so env-bound
// options stay testable without touching the process environment.
type EnvLookup func(name string) (string, bool)

// ParseOpt configures one Parse call.
type ParseOpt func(*parseCfg)

type parseCfg struct {
	lookupEnv EnvLookup
}

// WithEnvLookup overrides where env-bound options read their fallback
// values from. The default is os.LookupEnv.
func WithEnvLookup(lookup EnvLookup) ParseOpt {
	return func(cfg *parseCfg) {
		cfg.lookupEnv = lookup
	}
}

// AddOption configures one Add call.
type AddOption func(*addConfig)

type addConfig struct {
	group   string
	argHelp string
}

// WithGroup places the option in a named help group. Ungrouped options go
// into the unnamed group, which is always printed first.
func WithGroup(group string) AddOption {
	return func(cfg *addConfig) {
		cfg.group = group
	}
}

// WithArgHelp sets the value placeholder shown in help, e.g. "FILE" in
// "--output FILE". Defaults to "arg" for non-boolean options.
func WithArgHelp(help string) AddOption {
	return func(cfg *addConfig) {
		cfg.argHelp = help
	}
}
