package tly

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Param is a single query key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered sequence of query parameters. Order is preserved on
// the wire, which keeps bracket-indexed list parameters in index order.
type Params []Param

// Set appends a key/value pair.
func (p *Params) Set(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// SetIndexed appends one name[i]=v pair per id. The API requires this
// bracket-indexed form for id lists; repeated keys and comma joins are not
// accepted.
func (p *Params) SetIndexed(key string, ids []int64) {
	for i, id := range ids {
		p.Set(fmt.Sprintf("%s[%d]", key, i), strconv.FormatInt(id, 10))
	}
}

// Encode renders the parameters in insertion order with percent escaping.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// Timestamp is a date or date-time request parameter. Build one from a
// time.Time with AtTime or OnDate, or pass a preformatted string through
// with TimestampString. The zero value is omitted from requests.
type Timestamp struct {
	value string
}

// AtTime renders t in RFC 3339 form.
func AtTime(t time.Time) Timestamp {
	return Timestamp{value: t.Format(time.RFC3339)}
}

// OnDate renders t as a calendar date (YYYY-MM-DD).
func OnDate(t time.Time) Timestamp {
	return Timestamp{value: t.Format("2006-01-02")}
}

// TimestampString wraps an already formatted date or date-time string.
func TimestampString(s string) Timestamp {
	return Timestamp{value: s}
}

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t.value == ""
}

// String returns the canonical textual form.
func (t Timestamp) String() string {
	return t.value
}

// Bool returns a pointer to b, for optional boolean fields.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s, for optional string fields where the
// empty string is a meaningful value.
func String(s string) *string {
	return &s
}

func setString(body map[string]any, key, value string) {
	if value != "" {
		body[key] = value
	}
}

func setTimestamp(body map[string]any, key string, t Timestamp) {
	if !t.IsZero() {
		body[key] = t.String()
	}
}

func setTimestampParam(p *Params, key string, t Timestamp) {
	if !t.IsZero() {
		p.Set(key, t.String())
	}
}
