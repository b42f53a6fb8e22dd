package model

import (
	"bytes"
	"encoding/json"
)

// ItemRecord holds one respondent's answer for one produce item.
type ItemRecord struct {
	WouldThrow         bool     `json:"would_throw"`         // strict yes/no intent
	ExpectedRancidness *float64 `json:"expected_rancidness"` // nil when unrecoverable
	DesiredRancidness  *float64 `json:"desired_rancidness"`  // nil when unrecoverable
	Notes              string   `json:"notes"`               // original text of any cell that needed recovery
}

// Items is the fixed survey schema: the tracked produce names in column
// order. Each item owns three consecutive cells per row (would-throw flag,
// expected rating, desired rating).
var Items = []string{
	"artichoke",
	"avocado",
	"banana",
	"brussels_sprout",
	"cantaloupe",
	"cauliflower",
	"chard",
	"crimini_mushroom",
	"golden_beet",
	"jalapeno",
	"kiwi",
	"korean_melon",
	"lime",
	"pear",
	"plucot",
	"red_grapefruit",
	"red_onion",
	"straightneck_squash",
	"strawberry",
	"tomatillo",
}

// Response is one survey row: one record per tracked item.
type Response map[string]ItemRecord

// MarshalJSON emits the items in schema order rather than Go's map order,
// so document artifacts line up with the survey columns.
func (r Response) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		rec, err := json.Marshal(r[name])
		if err != nil {
			return nil, err
		}
		buf.Write(rec)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
