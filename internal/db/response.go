package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Response is one reply to a carpool request.
//
// Two stored variants exist. The current shape is a structured object
// {userId, message, timestamp}; rows written before the format
// migration hold a bare user-id string instead. Decoding resolves the
// variant exactly once: legacy entries come back with Legacy=true and
// empty Message/Timestamp, which the carpool reconciler fills with
// defaults. Writers must only ever append the structured shape.
type Response struct {
	UserID    string `json:"userId"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC 3339
	Legacy    bool   `json:"-"`
}

// MarshalJSON re-encodes legacy entries as the bare string they were
// stored as, so a read-append-write of the whole list never silently
// migrates old rows.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Legacy {
		return json.Marshal(r.UserID)
	}
	type structured Response
	return json.Marshal(structured(r))
}

func (r *Response) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Response{UserID: id, Legacy: true}
		return nil
	}

	type structured Response
	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("response is neither a user id nor an object: %w", err)
	}
	*r = Response(s)
	return nil
}

// ResponseList maps the responses JSON column. Order is insertion
// order and is never re-sorted; the same user may appear more than
// once.
type ResponseList []Response

func (l *ResponseList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported responses column type %T", value)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(raw, l)
}

func (l ResponseList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal responses: %w", err)
	}
	return string(b), nil
}
