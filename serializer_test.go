// Tests for the streaming Serializer API.

package msd_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/smdbs01/go-msd"
	"github.com/smdbs01/go-msd/internal/libmsd"
	"github.com/smdbs01/go-msd/internal/testutil/assert"
)

func TestSerializer_Streaming(t *testing.T) {
	var b strings.Builder
	s, err := msd.NewSerializer(&b)
	assert.NoError(t, err)

	assert.NoError(t, s.Serialize(&msd.Parameter{Components: []string{"TITLE", "Springtime"}}))
	assert.NoError(t, s.Serialize(&msd.Parameter{Components: []string{"OFFSET", "-0.240"}}))

	assert.Equal(t, "#TITLE:Springtime;\n#OFFSET:-0.240;\n", b.String())
}

func TestSerializer_EscapesSpecialText(t *testing.T) {
	var b strings.Builder
	s, err := msd.NewSerializer(&b)
	assert.NoError(t, err)

	assert.NoError(t, s.Serialize(&msd.Parameter{Components: []string{"K", "a:b//c"}}))
	assert.Equal(t, "#K:a\\:b\\//c;\n", b.String())
}

func TestSerializer_WithoutEscapes(t *testing.T) {
	var b strings.Builder
	s, err := msd.NewSerializer(&b, msd.WithEscapes(false))
	assert.NoError(t, err)

	err = s.Serialize(&msd.Parameter{Components: []string{"K", "a;b"}})
	var serializeErr *msd.SerializeError
	assert.ErrorAs(t, err, &serializeErr)
	assert.Equal(t, "a;b", serializeErr.Component)
}

// brokenWriter fails every write.
type brokenWriter struct {
	err error
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestSerializer_WriterError(t *testing.T) {
	errPipe := errors.New("pipe closed")
	s, err := msd.NewSerializer(&brokenWriter{err: errPipe})
	assert.NoError(t, err)

	assert.ErrorIs(t, s.Serialize(&msd.Parameter{Components: []string{"A"}}), errPipe)
}

// A component holding '#' right after a newline serializes without an
// escape, and parsing that output splits the record at the '#' under
// the missing-terminator recovery rule. Serialized output is stable
// from the second generation on.
func TestSerializer_NewlinePoundSplitsOnReparse(t *testing.T) {
	params, err := msd.Parse([]byte("#K:a\n\\#b;"))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(params))
	assert.DeepEqual(t, []string{"K", "a\n#b"}, params[0].Components)

	out, err := msd.Serialize(params)
	assert.NoError(t, err)
	assert.Equal(t, "#K:a\n#b;\n", string(out))

	reparsed, err := msd.Parse(out)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(reparsed))
	assert.DeepEqual(t, []string{"K", "a\n"}, reparsed[0].Components)
	assert.DeepEqual(t, []string{"b"}, reparsed[1].Components)
}

func TestSerialize_BadOption(t *testing.T) {
	errBad := errors.New("unsupported")
	bad := msd.Option(func(*libmsd.Options) error { return errBad })

	_, err := msd.Serialize(nil, bad)
	assert.ErrorIs(t, err, errBad)
	_, err = msd.Parse(nil, bad)
	assert.ErrorIs(t, err, errBad)
}
