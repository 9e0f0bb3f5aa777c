package opts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSpecifierShapes(t *testing.T) {
	o := New("testapp")

	assert.NoError(t, o.Add("d,debug", "debug flag", nil))
	assert.NoError(t, o.Add("verbose", "long only", nil))
	assert.NoError(t, o.Add("q", "short only", nil))
	assert.NoError(t, o.Add("?,help", "question mark short", nil))
	assert.NoError(t, o.Add("dry-run", "dash in name", nil))
	assert.NoError(t, o.Add("log_level", "underscore in name", nil))
}

func TestAddRejectsInvalidSpecifiers(t *testing.T) {
	o := New("testapp")
	for _, spec := range []string{"", ",", "!,bang", "d,", "d,x", "a,-bad", "a,b ad", "-,dash"} {
		err := o.Add(spec, "", nil)
		assert.Error(t, err, "spec %q", spec)
		var ife *InvalidFormatError
		assert.True(t, errors.As(err, &ife), "spec %q", spec)
		assert.True(t, errors.Is(err, ErrSpec), "spec %q", spec)
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	o := New("testapp")
	assert.NoError(t, o.Add("d,debug", "", nil))

	err := o.Add("debug", "again", nil)
	var ee *ExistsError
	assert.True(t, errors.As(err, &ee))
	assert.Equal(t, "debug", ee.Option)

	err = o.Add("d,dump", "short collides", nil)
	assert.True(t, errors.As(err, &ee))
	assert.Equal(t, "d", ee.Option)

	// A failed registration must not leave partial names behind.
	assert.NoError(t, o.Add("dump", "", nil))
}

func TestAddNilValueMeansBoolFlag(t *testing.T) {
	o := New("testapp")
	assert.NoError(t, o.Add("v,verbose", "", nil))

	r, err := o.Parse([]string{"testapp", "-v"})
	assert.NoError(t, err)
	v, err := r.Value("verbose")
	assert.NoError(t, err)
	b, err := As[bool](v)
	assert.NoError(t, err)
	assert.True(t, b)
}
