package opts

type tokenKind int

const (
	// tokenPlain is a token with no option shape: it does not start with
	// '-', or is a bare "-".
	tokenPlain tokenKind = iota
	// tokenDashDash is exactly "--".
	tokenDashDash
	// tokenLong is "--name" or "--name=value"; name is alnum-started,
	// longer than one char, with an alnum/'-'/'_' body.
	tokenLong
	// tokenShort is "-abc": one or more alnum chars after a single dash,
	// or the lone sentinel "-?".
	tokenShort
	// tokenMalformed starts with '-' but matches neither shape.
	tokenMalformed
)

type token struct {
	kind     tokenKind
	name     string // long name, or the short cluster chars
	value    string // inline value after '=' (long form only)
	hasValue bool   // distinguishes "--name=" from "--name"
}

// classify decides the lexical shape of one argv entry. It is a pure
// function of the text: the registry is never consulted here, so the same
// routine serves both the scan loop and the lookahead in argument
// acquisition.
func classify(arg string) token {
	if arg == "" || arg[0] != '-' {
		return token{kind: tokenPlain}
	}
	if arg == "-" {
		return token{kind: tokenPlain}
	}
	if arg == "--" {
		return token{kind: tokenDashDash}
	}

	if arg[1] == '-' {
		return classifyLong(arg)
	}
	return classifyShort(arg)
}

func classifyLong(arg string) token {
	rest := arg[2:]
	// A long name must start alnum and be longer than one char; this
	// rejects "--x" so that single-character names stay short-only.
	if !isAlnum(rest[0]) || len(rest) < 2 {
		return token{kind: tokenMalformed}
	}

	for i := 1; i < len(rest); i++ {
		c := rest[i]
		if c == '=' {
			if i < 2 {
				return token{kind: tokenMalformed}
			}
			// The remainder is the value, verbatim, possibly empty.
			return token{kind: tokenLong, name: rest[:i], value: rest[i+1:], hasValue: true}
		}
		if c != '-' && c != '_' && !isAlnum(c) {
			return token{kind: tokenMalformed}
		}
	}
	return token{kind: tokenLong, name: rest}
}

func classifyShort(arg string) token {
	rest := arg[1:]
	// '?' is legal only as a lone short name.
	if len(rest) == 1 {
		if rest[0] == '?' || isAlnum(rest[0]) {
			return token{kind: tokenShort, name: rest}
		}
		return token{kind: tokenMalformed}
	}
	for i := 0; i < len(rest); i++ {
		if !isAlnum(rest[i]) {
			return token{kind: tokenMalformed}
		}
	}
	return token{kind: tokenShort, name: rest}
}
