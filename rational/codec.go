package rational

import (
	"math/big"
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(0, (*Rational)(nil))
}

// rationalState is the persisted layout: exactly the numerator and the
// denominator, the numerator sign split out because big-endian magnitude
// bytes carry no sign of their own.
type rationalState struct {
	Negative    bool   `msgpack:"s"`
	Numerator   []byte `msgpack:"n"`
	Denominator []byte `msgpack:"d"`
}

func (r *Rational) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(rationalState{
		Negative:    r.n.Sign() < 0,
		Numerator:   r.n.Bytes(),
		Denominator: r.d.Bytes(),
	})
}

// UnmarshalMsgpack rebuilds the value through New, so a tampered payload
// (unreduced pair, negative denominator) decodes to the canonical form and
// a zero denominator fails outright. Fields are never assigned directly.
func (r *Rational) UnmarshalMsgpack(b []byte) error {
	var state rationalState
	err := msgpack.Unmarshal(b, &state)
	if err != nil {
		return err
	}
	n := new(big.Int).SetBytes(state.Numerator)
	if state.Negative {
		n.Neg(n)
	}
	v, err := New(n, new(big.Int).SetBytes(state.Denominator))
	if err != nil {
		return err
	}
	*r = *v
	return nil
}

func (r *Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	v, err := NewFromString(unquoted)
	if err != nil {
		return err
	}
	*r = *v
	return nil
}

// Gob restores fields without passing through New, so both directions
// fail deterministically. The msgpack and JSON forms are the only
// reconstruction paths.
func (r *Rational) GobEncode() ([]byte, error) {
	return nil, ErrUnsupportedDeserialization
}

func (r *Rational) GobDecode([]byte) error {
	return ErrUnsupportedDeserialization
}
