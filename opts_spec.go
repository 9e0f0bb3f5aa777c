package opts

// optionDetails is one immutable registered option. Both the short-name
// and long-name entries in the registry refer to it by id.
type optionDetails struct {
	id    int
	short string
	long  string
	desc  string
	value Value // prototype; cloned per parse
}

// name returns the canonical name used in results and error messages.
func (d *optionDetails) name() string {
	if d.long != "" {
		return d.long
	}
	return d.short
}

// Options is the declarative specification: the registry of recognized
// names, the positional plan, and the engine toggles. Build it fully
// before the first Parse call; registration is not safe concurrently with
// parsing, but a frozen Options may serve any number of concurrent parses.
type Options struct {
	program        string
	description    string
	customHelp     string
	positionalHelp string
	showPositional bool
	width          int
	tabExpansion   bool

	allowUnrecognised bool
	stopOnPositional  bool

	entries       []*optionDetails // arena; id is the index
	names         map[string]int   // every declared name -> id
	positional    []string
	positionalSet map[string]bool
	help          map[string]*helpGroup
}

func New(program string) *Options {
	return &Options{
		program:        program,
		customHelp:     "[OPTION...]",
		positionalHelp: "positional parameters",
		width:          76,
		names:          make(map[string]int),
		positionalSet:  make(map[string]bool),
		help:           make(map[string]*helpGroup),
	}
}

func (o *Options) SetDescription(desc string) *Options {
	o.description = desc
	return o
}

func (o *Options) SetCustomHelp(text string) *Options {
	o.customHelp = text
	return o
}

func (o *Options) SetPositionalHelp(text string) *Options {
	o.positionalHelp = text
	return o
}

func (o *Options) SetShowPositionalHelp(show bool) *Options {
	o.showPositional = show
	return o
}

func (o *Options) SetWidth(width int) *Options {
	o.width = width
	return o
}

func (o *Options) SetTabExpansion(expand bool) *Options {
	o.tabExpansion = expand
	return o
}

// AllowUnrecognised redirects unknown tokens into the unmatched list
// instead of failing the parse. Known options with bad input still fail.
func (o *Options) AllowUnrecognised(allow bool) *Options {
	o.allowUnrecognised = allow
	return o
}

// StopOnPositional halts the scan at the first positional token, leaving
// the rest of argv untouched. Consumed() tells the caller where to
// re-slice for a sub-parser.
func (o *Options) StopOnPositional(stop bool) *Options {
	o.stopOnPositional = stop
	return o
}

// Add registers one option. The spec is "d,debug", "debug", or "d"; value
// nil registers a boolean flag. Name collisions and malformed specifiers
// fail fast, never silently overwrite.
func (o *Options) Add(spec, desc string, value Value, aopts ...AddOption) error {
	cfg := &addConfig{}
	for _, opt := range aopts {
		opt(cfg)
	}

	short, long, ok := parseSpecifier(spec)
	if !ok {
		return &InvalidFormatError{Format: spec}
	}
	if value == nil {
		value = Bool()
	}

	if short != "" {
		if _, exists := o.names[short]; exists {
			return &ExistsError{Option: short}
		}
	}
	if long != "" {
		if _, exists := o.names[long]; exists {
			return &ExistsError{Option: long}
		}
	}

	d := &optionDetails{
		id:    len(o.entries),
		short: short,
		long:  long,
		desc:  desc,
		value: value,
	}
	o.entries = append(o.entries, d)
	if short != "" {
		o.names[short] = d.id
	}
	if long != "" {
		o.names[long] = d.id
	}

	group := o.help[cfg.group]
	if group == nil {
		group = &helpGroup{}
		o.help[cfg.group] = group
	}
	group.options = append(group.options, helpOption{
		short:        short,
		long:         long,
		desc:         desc,
		argHelp:      cfg.argHelp,
		defaultText:  value.DefaultText(),
		implicitText: value.ImplicitText(),
		envVar:       value.EnvVar(),
		hasDefault:   value.HasDefault(),
		hasImplicit:  value.HasImplicit(),
		hasEnv:       value.HasEnv(),
		isBoolean:    value.IsBoolean(),
		isContainer:  value.IsContainer(),
	})

	return nil
}

// ParsePositional declares, in order, the option names that receive
// unflagged arguments. Names are checked against the registry when the
// engine first reaches them.
func (o *Options) ParsePositional(names ...string) *Options {
	o.positional = append([]string(nil), names...)
	o.positionalSet = make(map[string]bool, len(names))
	for _, name := range names {
		o.positionalSet[name] = true
	}
	return o
}

// parseSpecifier splits "d,debug" style text into short and long names,
// validating their shapes.
func parseSpecifier(text string) (short, long string, ok bool) {
	if text == "" {
		return "", "", false
	}

	i := 0
	// Leading short name: a single char, or a char followed by a comma.
	if len(text) == 1 || text[1] == ',' {
		c := text[0]
		if c != '?' && !isAlnum(c) {
			return "", "", false
		}
		short = string(c)
		i = 1
	}
	sawComma := false
	if i < len(text) && text[i] == ',' {
		if short == "" {
			return "", "", false
		}
		sawComma = true
		i++
	}
	for i < len(text) && text[i] == ' ' {
		i++
	}
	if i == len(text) {
		// A comma promises a long name.
		return short, "", short != "" && !sawComma
	}

	if !isAlnum(text[i]) {
		return "", "", false
	}
	start := i
	for i++; i < len(text); i++ {
		c := text[i]
		if c != '-' && c != '_' && !isAlnum(c) {
			return "", "", false
		}
	}
	long = text[start:]
	if len(long) < 2 {
		return "", "", false
	}
	return short, long, true
}
