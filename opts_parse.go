package opts

import "os"

// Parse runs one pass over argv. argv[0] is the program name and is
// skipped. The Options value is read-only here, so concurrent parses over
// the same Options are safe.
func (o *Options) Parse(argv []string, popts ...ParseOpt) (*ParseResult, error) {
	cfg := &parseCfg{lookupEnv: os.LookupEnv}
	for _, opt := range popts {
		opt(cfg)
	}
	p := &parser{
		opts:      o,
		lookupEnv: cfg.lookupEnv,
		parsed:    make(map[int]*OptionValue),
	}
	return p.parse(argv)
}

// parser is the per-pass mutable state. A fresh one is built for every
// Parse call; nothing here survives the pass except inside ParseResult.
type parser struct {
	opts      *Options
	lookupEnv EnvLookup

	parsed     map[int]*OptionValue
	sequential []KeyValue
	unmatched  []string
}

func (p *parser) parse(argv []string) (*ParseResult, error) {
	current := 0
	if len(argv) > 0 {
		current = 1
	}
	nextPositional := 0

scan:
	for current < len(argv) {
		arg := argv[current]

		if arg == "--" {
			current++
			if p.opts.stopOnPositional {
				break
			}
			// Everything after the separator is positional text, no
			// matter its shape.
			for ; current < len(argv); current++ {
				ok, err := p.consumePositional(argv[current], &nextPositional)
				if err != nil {
					return nil, err
				}
				if !ok {
					break
				}
			}
			for ; current < len(argv); current++ {
				p.unmatched = append(p.unmatched, argv[current])
			}
			break
		}

		tok := classify(arg)
		switch tok.kind {
		case tokenPlain, tokenMalformed:
			if tok.kind == tokenMalformed && !p.opts.allowUnrecognised {
				return nil, &SyntaxError{Token: arg}
			}
			if p.opts.stopOnPositional {
				break scan
			}
			ok, err := p.consumePositional(arg, &nextPositional)
			if err != nil {
				return nil, err
			}
			if !ok {
				p.unmatched = append(p.unmatched, arg)
			}

		case tokenShort:
			if err := p.parseShortCluster(argv, &current, tok.name); err != nil {
				return nil, err
			}

		case tokenLong:
			id, ok := p.opts.names[tok.name]
			if !ok {
				if !p.opts.allowUnrecognised {
					return nil, &NotExistsError{Option: tok.name}
				}
				p.unmatched = append(p.unmatched, arg)
				break
			}
			d := p.opts.entries[id]
			if tok.hasValue {
				if err := p.parseOption(d, tok.value); err != nil {
					return nil, err
				}
			} else if err := p.acquireArgument(argv, &current, d, tok.name); err != nil {
				return nil, err
			}
		}
		current++
	}

	if err := p.finalize(); err != nil {
		return nil, err
	}

	keys := make(map[string]int, len(p.opts.names))
	for _, d := range p.opts.entries {
		if d.short != "" {
			keys[d.short] = d.id
		}
		if d.long != "" {
			keys[d.long] = d.id
		}
	}

	return &ParseResult{
		keys:       keys,
		values:     p.parsed,
		sequential: p.sequential,
		unmatched:  p.unmatched,
		consumed:   current,
	}, nil
}

// parseShortCluster walks "-abc": every char but the last must be a flag
// with an implicit value; a char without one swallows the remainder of the
// cluster as its argument.
func (p *parser) parseShortCluster(argv []string, current *int, cluster string) error {
	for i := 0; i < len(cluster); i++ {
		name := cluster[i : i+1]
		id, ok := p.opts.names[name]
		if !ok {
			if p.opts.allowUnrecognised {
				p.unmatched = append(p.unmatched, "-"+name)
				continue
			}
			return &NotExistsError{Option: name}
		}
		d := p.opts.entries[id]

		if i+1 == len(cluster) {
			return p.acquireArgument(argv, current, d, name)
		}
		if d.value.HasImplicit() {
			if err := p.parseOption(d, d.value.ImplicitText()); err != nil {
				return err
			}
			continue
		}
		return p.parseOption(d, cluster[i+1:])
	}
	return nil
}

// acquireArgument resolves the value for an option that got none inline.
// An implicit value always wins; only without one may the next argv entry
// be consumed, and never one that looks like a registered option.
func (p *parser) acquireArgument(argv []string, current *int, d *optionDetails, name string) error {
	if d.value.HasImplicit() {
		return p.parseOption(d, d.value.ImplicitText())
	}
	if *current+1 >= len(argv) || p.looksLikeOption(argv[*current+1]) {
		return &MissingArgumentError{Option: name}
	}
	*current++
	return p.parseOption(d, argv[*current])
}

// looksLikeOption is the lookahead guard: "--", a registered long name, or
// a short cluster whose first char is registered. Unregistered
// option-shaped text is still usable as a value.
func (p *parser) looksLikeOption(arg string) bool {
	tok := classify(arg)
	switch tok.kind {
	case tokenDashDash:
		return true
	case tokenLong:
		_, ok := p.opts.names[tok.name]
		return ok
	case tokenShort:
		_, ok := p.opts.names[tok.name[:1]]
		return ok
	}
	return false
}

// consumePositional feeds one token to the positional plan. The cursor
// parks on a container slot so it absorbs every remaining token; a scalar
// slot takes one token and only if it is still empty.
func (p *parser) consumePositional(arg string, next *int) (bool, error) {
	for *next < len(p.opts.positional) {
		name := p.opts.positional[*next]
		id, ok := p.opts.names[name]
		if !ok {
			return false, &NotExistsError{Option: name}
		}
		d := p.opts.entries[id]

		if d.value.IsContainer() {
			return true, p.parseOption(d, arg)
		}
		if p.cell(d.id).count == 0 {
			*next++
			return true, p.parseOption(d, arg)
		}
		*next++
	}
	return false, nil
}

func (p *parser) parseOption(d *optionDetails, text string) error {
	if err := p.cell(d.id).parse(d, text); err != nil {
		return err
	}
	p.sequential = append(p.sequential, KeyValue{key: d.name(), value: text})
	return nil
}

func (p *parser) cell(id int) *OptionValue {
	v, ok := p.parsed[id]
	if !ok {
		v = &OptionValue{}
		p.parsed[id] = v
	}
	return v
}

// finalize fills untouched options: env binding first so an env value
// counts as an occurrence and suppresses the default, then the declared
// default. Options with neither still get a named cell so queries can
// report a precise error.
func (p *parser) finalize() error {
	for _, d := range p.opts.entries {
		v := p.cell(d.id)
		if d.value.HasEnv() && v.count == 0 {
			if text, ok := p.lookupEnv(d.value.EnvVar()); ok {
				if err := v.parse(d, text); err != nil {
					return err
				}
			}
		}
		if d.value.HasDefault() {
			if v.count == 0 {
				if err := v.parseDefault(d); err != nil {
					return err
				}
			}
		} else {
			v.parseNoValue(d)
		}
	}
	return nil
}
