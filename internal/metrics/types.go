// Package metrics names the numeric values of an analysis report so files
// can be listed, compared and ranked by any of them.
package metrics

import (
	"fmt"
	"strings"

	"github.com/jeduden/textstat"
)

// Order defines metric sort order.
type Order string

const (
	// OrderAsc sorts from smallest to largest.
	OrderAsc Order = "asc"
	// OrderDesc sorts from largest to smallest.
	OrderDesc Order = "desc"
)

// ParseOrder parses a user-provided sort order. The empty string selects
// fallback.
func ParseOrder(raw string, fallback Order) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return fallback, nil
	case string(OrderDesc):
		return OrderDesc, nil
	case string(OrderAsc):
		return OrderAsc, nil
	default:
		return "", fmt.Errorf("unknown order %q (supported: asc, desc)", raw)
	}
}

// ValueKind describes how to render a numeric metric value.
type ValueKind string

const (
	// KindInteger renders values as rounded integers.
	KindInteger ValueKind = "integer"
	// KindFloat renders values with fixed decimal precision.
	KindFloat ValueKind = "float"
)

// Value is a computed numeric metric value. A value is unavailable when the
// report has nothing to measure, such as an average over zero sentences.
type Value struct {
	Number    float64
	Available bool
}

// AvailableValue constructs an available metric value.
func AvailableValue(n float64) Value {
	return Value{
		Number:    n,
		Available: true,
	}
}

// UnavailableValue constructs an unavailable metric value.
func UnavailableValue() Value {
	return Value{}
}

// Definition describes a metric and how to read it from a report.
type Definition struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Kind         ValueKind `json:"kind"`
	Precision    int       `json:"precision"`
	Default      bool      `json:"default"`
	DefaultOrder Order     `json:"default_order"`

	Compute func(r *textstat.Report) Value `json:"-"`
}
