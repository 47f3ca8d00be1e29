package currency

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Rate struct {
	Code  Code
	Value float64
}

// RateMap maps foreign currencies to their current naira rate, keeping
// the order in which they were added.
type RateMap struct {
	entries []Rate
}

func NewRateMap(rates ...Rate) (RateMap, error) {
	m := RateMap{}
	for _, r := range rates {
		if err := m.set(r.Code, r.Value); err != nil {
			return RateMap{}, err
		}
	}
	return m, nil
}

func (m *RateMap) set(code Code, value float64) error {
	if !code.IsForeign() {
		return fmt.Errorf("%w: %q has no rate", ErrInvalidArgument, code)
	}
	for i, e := range m.entries {
		if e.Code == code {
			m.entries[i].Value = value
			return nil
		}
	}
	m.entries = append(m.entries, Rate{Code: code, Value: value})
	return nil
}

func (m RateMap) Get(code Code) (float64, bool) {
	for _, e := range m.entries {
		if e.Code == code {
			return e.Value, true
		}
	}
	return 0, false
}

func (m RateMap) Len() int {
	return len(m.entries)
}

func (m RateMap) Entries() []Rate {
	out := make([]Rate, len(m.entries))
	copy(out, m.entries)
	return out
}

// Pick returns a RateMap holding only the given codes, in the given order.
func (m RateMap) Pick(codes ...Code) (RateMap, error) {
	out := RateMap{}
	for _, c := range codes {
		v, ok := m.Get(c)
		if !ok {
			return RateMap{}, fmt.Errorf("%w: no rate for %q", ErrInvalidArgument, c)
		}
		out.entries = append(out.entries, Rate{Code: c, Value: v})
	}
	return out, nil
}

func (m RateMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Code))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
