package opts

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultDelimiter splits list values unless overridden per store.
const DefaultDelimiter = ','

// Char is a single-character option value. The parsed text must be exactly
// one rune.
type Char rune

// Scalar is the closed set of element types a value store can hold.
type Scalar interface {
	~bool | ~string | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Value is the capability an option's store exposes to the engine. A store
// registered with an option is a prototype: it carries policy (default,
// implicit, env binding, delimiter) and is cloned for every parse pass so
// that no two passes share mutable state.
type Value interface {
	// Parse converts text into the typed cell. Scalars overwrite,
	// containers append.
	Parse(text string) error
	// ParseDefault parses the declared default text, used during
	// finalization.
	ParseDefault() error
	// Clone returns a store with the same policy and a fresh zero cell.
	Clone() Value

	IsBoolean() bool
	IsContainer() bool
	HasDefault() bool
	HasImplicit() bool
	HasEnv() bool
	DefaultText() string
	ImplicitText() string
	EnvVar() string

	typeName() string
}

// Val is the concrete store for element type T, one of the Scalar types or
// a []T / [][]T over them.
type Val[T any] struct {
	store *T

	hasDefault   bool
	defaultText  string
	hasImplicit  bool
	implicitText string
	hasEnv       bool
	envVar       string
	delimiter    rune
	boolean      bool
	container    bool
}

// NewValue creates a scalar store. Boolean stores come preconfigured with
// default "false" and implicit "true" so a bare flag means true; both can
// be overridden.
func NewValue[T Scalar]() *Val[T] {
	v := &Val[T]{store: new(T), delimiter: DefaultDelimiter}
	if _, ok := any(v.store).(*bool); ok {
		v.boolean = true
		v.hasDefault = true
		v.defaultText = "false"
		v.hasImplicit = true
		v.implicitText = "true"
	}
	return v
}

// NewList creates a store that accepts multiple delimited values per
// occurrence and absorbs multiple positional slots.
func NewList[T Scalar]() *Val[[]T] {
	return &Val[[]T]{store: new([]T), delimiter: DefaultDelimiter, container: true}
}

// NewNestedList creates a store of lists: each occurrence appends one outer
// element built by splitting that occurrence's text.
func NewNestedList[T Scalar]() *Val[[][]T] {
	return &Val[[][]T]{store: new([][]T), delimiter: DefaultDelimiter, container: true}
}

// Bool is shorthand for NewValue[bool]().
func Bool() *Val[bool] {
	return NewValue[bool]()
}

// String is shorthand for NewValue[string]().
func String() *Val[string] {
	return NewValue[string]()
}

func (v *Val[T]) SetDefault(text string) *Val[T] {
	v.hasDefault = true
	v.defaultText = text
	return v
}

func (v *Val[T]) SetImplicit(text string) *Val[T] {
	v.hasImplicit = true
	v.implicitText = text
	return v
}

func (v *Val[T]) SetEnv(name string) *Val[T] {
	v.hasEnv = true
	v.envVar = name
	return v
}

func (v *Val[T]) SetDelimiter(d rune) *Val[T] {
	v.delimiter = d
	return v
}

func (v *Val[T]) Parse(text string) error {
	return parseInto(text, v.store, v.delimiter)
}

func (v *Val[T]) ParseDefault() error {
	return parseInto(v.defaultText, v.store, v.delimiter)
}

func (v *Val[T]) Clone() Value {
	c := *v
	c.store = new(T)
	return &c
}

func (v *Val[T]) IsBoolean() bool      { return v.boolean }
func (v *Val[T]) IsContainer() bool    { return v.container }
func (v *Val[T]) HasDefault() bool     { return v.hasDefault }
func (v *Val[T]) HasImplicit() bool    { return v.hasImplicit }
func (v *Val[T]) HasEnv() bool         { return v.hasEnv }
func (v *Val[T]) DefaultText() string  { return v.defaultText }
func (v *Val[T]) ImplicitText() string { return v.implicitText }
func (v *Val[T]) EnvVar() string       { return v.envVar }

func (v *Val[T]) typeName() string {
	return fmt.Sprintf("%T", *v.store)
}

// Get returns the current typed cell. Mostly useful in tests; callers
// normally go through ParseResult and As.
func (v *Val[T]) Get() T {
	return *v.store
}

// parseInto is the single conversion dispatch for every supported cell
// type. Scalars overwrite the cell, lists append to it.
func parseInto(text string, dst any, delim rune) error {
	switch p := dst.(type) {
	case *bool:
		b, err := parseBool(text)
		if err != nil {
			return err
		}
		*p = b
	case *string:
		*p = text
	case *Char:
		c, err := parseChar(text)
		if err != nil {
			return err
		}
		*p = c
	case *int:
		return assignInteger(p, text)
	case *int8:
		return assignInteger(p, text)
	case *int16:
		return assignInteger(p, text)
	case *int32:
		return assignInteger(p, text)
	case *int64:
		return assignInteger(p, text)
	case *uint:
		return assignInteger(p, text)
	case *uint8:
		return assignInteger(p, text)
	case *uint16:
		return assignInteger(p, text)
	case *uint32:
		return assignInteger(p, text)
	case *uint64:
		return assignInteger(p, text)
	case *float32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return &IncorrectTypeError{Arg: text, Type: "float"}
		}
		*p = float32(f)
	case *float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return &IncorrectTypeError{Arg: text, Type: "float"}
		}
		*p = f
	case *[]bool:
		return parseList(p, text, delim)
	case *[]string:
		return parseList(p, text, delim)
	case *[]Char:
		return parseList(p, text, delim)
	case *[]int:
		return parseList(p, text, delim)
	case *[]int8:
		return parseList(p, text, delim)
	case *[]int16:
		return parseList(p, text, delim)
	case *[]int32:
		return parseList(p, text, delim)
	case *[]int64:
		return parseList(p, text, delim)
	case *[]uint:
		return parseList(p, text, delim)
	case *[]uint8:
		return parseList(p, text, delim)
	case *[]uint16:
		return parseList(p, text, delim)
	case *[]uint32:
		return parseList(p, text, delim)
	case *[]uint64:
		return parseList(p, text, delim)
	case *[]float32:
		return parseList(p, text, delim)
	case *[]float64:
		return parseList(p, text, delim)
	case *[][]bool:
		return parseNested(p, text, delim)
	case *[][]string:
		return parseNested(p, text, delim)
	case *[][]Char:
		return parseNested(p, text, delim)
	case *[][]int:
		return parseNested(p, text, delim)
	case *[][]int8:
		return parseNested(p, text, delim)
	case *[][]int16:
		return parseNested(p, text, delim)
	case *[][]int32:
		return parseNested(p, text, delim)
	case *[][]int64:
		return parseNested(p, text, delim)
	case *[][]uint:
		return parseNested(p, text, delim)
	case *[][]uint8:
		return parseNested(p, text, delim)
	case *[][]uint16:
		return parseNested(p, text, delim)
	case *[][]uint32:
		return parseNested(p, text, delim)
	case *[][]uint64:
		return parseNested(p, text, delim)
	case *[][]float32:
		return parseNested(p, text, delim)
	case *[][]float64:
		return parseNested(p, text, delim)
	default:
		return &IncorrectTypeError{Arg: text, Type: fmt.Sprintf("%T", dst)}
	}
	return nil
}

// parseList appends the delimited pieces of text to the list. Empty text
// deliberately appends a single zero element so "--opt=" records one empty
// occurrence rather than none.
func parseList[T any](p *[]T, text string, delim rune) error {
	if text == "" {
		var zero T
		*p = append(*p, zero)
		return nil
	}
	for _, part := range strings.Split(text, string(delim)) {
		var v T
		if err := parseInto(part, &v, delim); err != nil {
			return err
		}
		*p = append(*p, v)
	}
	return nil
}

// parseNested appends one outer element per call; nesting stops at one
// level.
func parseNested[T any](p *[][]T, text string, delim rune) error {
	var inner []T
	if err := parseList(&inner, text, delim); err != nil {
		return err
	}
	*p = append(*p, inner)
	return nil
}

func parseBool(text string) (bool, error) {
	switch text {
	case "1", "t", "T", "true", "True":
		return true, nil
	case "0", "f", "F", "false", "False":
		return false, nil
	}
	return false, &IncorrectTypeError{Arg: text, Type: "bool"}
}

func parseChar(text string) (Char, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || (r == utf8.RuneError && size == 1) {
		return 0, &IncorrectTypeError{Arg: text, Type: "char"}
	}
	return Char(r), nil
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func assignInteger[T integer](p *T, text string) error {
	n, err := parseInteger[T](text)
	if err != nil {
		return err
	}
	*p = n
	return nil
}

// parseInteger converts text into any integer width. The magnitude is
// accumulated unsigned and checked against the target's unsigned maximum
// before the sign is applied; negation goes through the unsigned
// intermediate so the exact minimum of a signed width (e.g. -128 for int8)
// parses without overflow.
func parseInteger[T integer](text string) (T, error) {
	u, negative, ok := parseUint64(text)
	if !ok {
		return 0, &IncorrectTypeError{Arg: text, Type: "integer"}
	}

	bits, signed := integerSpec(any(T(0)))
	umax := ^uint64(0) >> (64 - bits)
	if u > umax {
		return 0, &IncorrectTypeError{Arg: text, Type: "integer"}
	}
	if signed {
		limit := umax / 2 // 2^(bits-1) - 1
		if negative {
			limit++ // |min| = 2^(bits-1)
		}
		if u > limit {
			return 0, &IncorrectTypeError{Arg: text, Type: "integer"}
		}
	} else if negative {
		return 0, &IncorrectTypeError{Arg: text, Type: "integer"}
	}

	if negative {
		return -T(u-1) - 1, nil
	}
	return T(u), nil
}

func integerSpec(v any) (bits uint, signed bool) {
	switch v.(type) {
	case int8:
		return 8, true
	case int16:
		return 16, true
	case int32:
		return 32, true
	case int64:
		return 64, true
	case int:
		return strconv.IntSize, true
	case uint8:
		return 8, false
	case uint16:
		return 16, false
	case uint32:
		return 32, false
	case uint64:
		return 64, false
	case uint:
		return strconv.IntSize, false
	}
	return 64, true
}

// parseUint64 scans an optional sign, an optional 0x prefix, and a digit
// run. Overflow is detected by requiring the accumulated value to never
// decrease.
func parseUint64(text string) (value uint64, negative bool, ok bool) {
	i := 0
	if i == len(text) {
		return 0, false, false
	}
	switch text[i] {
	case '+':
		i++
	case '-':
		negative = true
		i++
	}
	if i == len(text) {
		return 0, negative, false
	}

	if i+1 < len(text) && text[i] == '0' && text[i+1] == 'x' {
		i += 2
		if i == len(text) {
			return 0, negative, false
		}
		for ; i < len(text); i++ {
			var digit uint64
			c := text[i]
			switch {
			case c >= '0' && c <= '9':
				digit = uint64(c - '0')
			case c >= 'a' && c <= 'f':
				digit = uint64(c-'a') + 10
			case c >= 'A' && c <= 'F':
				digit = uint64(c-'A') + 10
			default:
				return 0, negative, false
			}
			next := value*16 + digit
			if value > next {
				return 0, negative, false
			}
			value = next
		}
		return value, negative, true
	}

	for ; i < len(text); i++ {
		c := text[i]
		if !isDigit(c) {
			return 0, negative, false
		}
		next := value*10 + uint64(c-'0')
		if value > next {
			return 0, negative, false
		}
		value = next
	}
	return value, negative, true
}
