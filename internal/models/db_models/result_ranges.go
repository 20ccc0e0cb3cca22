package db_models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ResultRange is one named score range of a questions group,
// for example "good": [0, 13].
type ResultRange struct {
	Name string
	Low  int
	High int
}

// ResultRanges is the result_types JSON column. The column holds a JSON
// object, but the order of its keys matters: when ranges overlap, the
// last matching entry in document order wins. encoding/json maps lose
// that order, so the object is read token by token into a slice.
type ResultRanges []ResultRange

func (r ResultRanges) CategoryFor(score int) string {
	cat := "Unknown"
	for _, rr := range r {
		if score >= rr.Low && score <= rr.High {
			cat = rr.Name
		}
	}
	return cat
}

func (r *ResultRanges) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("result_types must be a JSON object")
	}

	var out ResultRanges
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)

		var bounds []int
		if err := dec.Decode(&bounds); err != nil {
			return fmt.Errorf("result_types[%s]: %w", name, err)
		}
		if len(bounds) != 2 {
			return fmt.Errorf("result_types[%s]: expected exactly 2 integers, got %d", name, len(bounds))
		}
		out = append(out, ResultRange{Name: name, Low: bounds[0], High: bounds[1]})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

func (r ResultRanges) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rr := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rr.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":[%d,%d]", rr.Low, rr.High)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *ResultRanges) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return r.UnmarshalJSON(v)
	case string:
		return r.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into ResultRanges", value)
	}
}

func (r ResultRanges) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	b, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// GormDataType keeps the column a JSON blob on every dialect.
func (ResultRanges) GormDataType() string {
	return "json"
}
