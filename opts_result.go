package opts

import "fmt"

// KeyValue is one recorded option occurrence: the canonical option name
// and the raw text it received, in argv order.
type KeyValue struct {
	key   string
	value string
}

func (kv KeyValue) Key() string   { return kv.key }
func (kv KeyValue) Value() string { return kv.value }

// OptionValue is the accumulated state of one option after a parse:
// occurrence count, whether the default was applied, and the typed store.
type OptionValue struct {
	count      int
	hasDefault bool
	name       string
	store      Value
}

// Count reports explicit occurrences from argv or env. A value supplied
// only by the default keeps count zero.
func (v *OptionValue) Count() int { return v.count }

// HasDefault reports whether finalization filled this option from its
// declared default.
func (v *OptionValue) HasDefault() bool { return v.hasDefault }

func (v *OptionValue) ensure(d *optionDetails) {
	if v.store == nil {
		v.store = d.value.Clone()
	}
}

func (v *OptionValue) parse(d *optionDetails, text string) error {
	v.ensure(d)
	if err := v.store.Parse(text); err != nil {
		return err
	}
	v.count++
	v.name = d.name()
	return nil
}

func (v *OptionValue) parseDefault(d *optionDetails) error {
	v.ensure(d)
	v.hasDefault = true
	v.name = d.name()
	return v.store.ParseDefault()
}

func (v *OptionValue) parseNoValue(d *optionDetails) {
	v.name = d.name()
}

// As extracts the typed value from an option's state. T must be exactly
// the type the option was declared with: int for NewValue[int], []string
// for NewList[string], and so on.
func As[T any](v *OptionValue) (T, error) {
	var zero T
	if v == nil || v.store == nil {
		name := ""
		if v != nil {
			name = v.name
		}
		return zero, &NoValueError{Option: name}
	}
	val, ok := v.store.(*Val[T])
	if !ok {
		return zero, &WrongTypeError{
			Option: v.name,
			Want:   fmt.Sprintf("%T", zero),
			Got:    v.store.typeName(),
		}
	}
	return val.Get(), nil
}

// ParseResult is the immutable outcome of one successful parse pass.
type ParseResult struct {
	keys       map[string]int
	values     map[int]*OptionValue
	sequential []KeyValue
	unmatched  []string
	consumed   int
}

// Count returns the number of explicit occurrences of the named option.
// Unknown names count zero.
func (r *ParseResult) Count(name string) int {
	id, ok := r.keys[name]
	if !ok {
		return 0
	}
	v, ok := r.values[id]
	if !ok {
		return 0
	}
	return v.count
}

// Has reports whether the named option occurred at least once.
func (r *ParseResult) Has(name string) bool {
	return r.Count(name) != 0
}

// Value returns the accumulated state for a registered option, under any
// of its names. Querying a name that was never registered is an error;
// querying a registered option that never occurred is not.
func (r *ParseResult) Value(name string) (*OptionValue, error) {
	id, ok := r.keys[name]
	if !ok {
		return nil, &NotPresentError{Option: name}
	}
	v, ok := r.values[id]
	if !ok {
		return nil, &NotPresentError{Option: name}
	}
	return v, nil
}

// Arguments returns every explicit occurrence in argv order. Defaults and
// env fallbacks are not recorded here.
func (r *ParseResult) Arguments() []KeyValue {
	return r.sequential
}

// Unmatched returns the tokens that matched nothing: extra positionals
// with no plan slot left, and, in tolerant mode, unrecognized options.
func (r *ParseResult) Unmatched() []string {
	return r.unmatched
}

// Consumed returns how many leading argv entries the pass processed.
// Under StopOnPositional this is the index of the first unconsumed entry,
// counting a terminating "--".
func (r *ParseResult) Consumed() int {
	return r.consumed
}
