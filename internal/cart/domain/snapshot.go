package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is the full cart content in insertion order. Its JSON form is
// the legacy storage format: a single object mapping product ID to
// quantity, e.g. {"a1":2,"b2":1}. Object key order is significant and is
// preserved on both encode and decode so that checkout processes vendor
// groups in the order products first entered the cart.
type Snapshot []Line

// Quantity returns the carted quantity for a product, or 0 if absent.
func (s Snapshot) Quantity(productID string) int64 {
	for _, ln := range s {
		if ln.ProductID == productID {
			return ln.Quantity
		}
	}
	return 0
}

// ProductIDs returns the carted product IDs in insertion order.
func (s Snapshot) ProductIDs() []string {
	ids := make([]string, 0, len(s))
	for _, ln := range s {
		ids = append(ids, ln.ProductID)
	}
	return ids
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ln := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ln.ProductID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", ln.Quantity)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the object token by token instead of decoding into
// a map, which would lose key order.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("cart snapshot: expected JSON object, got %v", tok)
	}

	var lines Snapshot
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("cart snapshot: non-string key %v", keyTok)
		}

		var qty int64
		if err := dec.Decode(&qty); err != nil {
			return fmt.Errorf("cart snapshot: quantity for %q: %w", key, err)
		}
		lines = append(lines, Line{ProductID: key, Quantity: qty})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = lines
	return nil
}
