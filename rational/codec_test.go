package rational

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v4"
)

func TestRationalMsgpack(t *testing.T) {
	assert := assert.New(t)

	r, err := NewFromInt64Pair(2, 4)
	assert.Nil(err)
	assert.Equal("1/2", r.String())

	p, err := r.MarshalMsgpack()
	assert.Nil(err)
	var out Rational
	err = out.UnmarshalMsgpack(p)
	assert.Nil(err)
	assert.Equal("1/2", out.String())
	assert.True(r.Equal(&out))

	neg, err := NewFromInt64Pair(-34, 567)
	assert.Nil(err)
	raw, err := msgpack.Marshal(neg)
	assert.Nil(err)
	var back Rational
	err = msgpack.Unmarshal(raw, &back)
	assert.Nil(err)
	assert.Equal("-34/567", back.String())
	assert.True(neg.Equal(&back))

	// An unreduced payload must come back canonical, not verbatim.
	tampered, err := msgpack.Marshal(rationalState{
		Negative:    false,
		Numerator:   []byte{4},
		Denominator: []byte{8},
	})
	assert.Nil(err)
	var fixed Rational
	err = fixed.UnmarshalMsgpack(tampered)
	assert.Nil(err)
	assert.Equal("1/2", fixed.String())

	hostile, err := msgpack.Marshal(rationalState{
		Negative:    true,
		Numerator:   []byte{1},
		Denominator: nil,
	})
	assert.Nil(err)
	var broken Rational
	err = broken.UnmarshalMsgpack(hostile)
	assert.ErrorIs(err, ErrInvalidDenominator)
}

func TestRationalJSON(t *testing.T) {
	assert := assert.New(t)

	r, err := NewFromInt64Pair(-1, 2)
	assert.Nil(err)
	j, err := json.Marshal(r)
	assert.Nil(err)
	assert.Equal("\"-1/2\"", string(j))

	var out Rational
	err = json.Unmarshal(j, &out)
	assert.Nil(err)
	assert.Equal("-1/2", out.String())
	assert.True(r.Equal(&out))

	err = json.Unmarshal([]byte("\"4/8\""), &out)
	assert.Nil(err)
	assert.Equal("1/2", out.String())

	err = json.Unmarshal([]byte("\"1/-2\""), &out)
	assert.NotNil(err)
	err = json.Unmarshal([]byte("\"1/0\""), &out)
	assert.ErrorIs(err, ErrInvalidDenominator)

	one, err := NewFromInt64Pair(7, 7)
	assert.Nil(err)
	j, err = json.Marshal(one)
	assert.Nil(err)
	assert.Equal("\"1\"", string(j))
	err = json.Unmarshal(j, &out)
	assert.Nil(err)
	assert.True(out.Equal(One))
}

func TestRationalGobDisabled(t *testing.T) {
	assert := assert.New(t)

	r, err := NewFromInt64Pair(1, 2)
	assert.Nil(err)

	_, err = r.GobEncode()
	assert.ErrorIs(err, ErrUnsupportedDeserialization)
	err = r.GobDecode([]byte{1, 2, 3})
	assert.ErrorIs(err, ErrUnsupportedDeserialization)

	var buf bytes.Buffer
	err = gob.NewEncoder(&buf).Encode(r)
	assert.NotNil(err)
	assert.Contains(err.Error(), "not supported")
}
