package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/signadot/jsonenc/container"
	"github.com/signadot/jsonenc/ir"
)

// ISO8601Layout is the layout used by DateISO8601. Times are converted to
// UTC first, so the zone always renders as "Z".
const ISO8601Layout = "2006-01-02T15:04:05Z07:00"

type DateKind int

const (
	DateKindDeferred DateKind = iota
	DateKindSeconds
	DateKindMilliseconds
	DateKindISO8601
	DateKindFormatted
	DateKindCustom
)

func (k DateKind) String() string {
	switch k {
	case DateKindDeferred:
		return "deferred"
	case DateKindSeconds:
		return "seconds"
	case DateKindMilliseconds:
		return "milliseconds"
	case DateKindISO8601:
		return "iso8601"
	case DateKindFormatted:
		return "layout"
	case DateKindCustom:
		return "custom"
	default:
		return fmt.Sprintf("<date kind %d>", int(k))
	}
}

// DateFunc encodes t into e. If it creates no container the date renders
// as an empty object.
type DateFunc func(t time.Time, e *container.Encoder) error

// Date decides how date values render.
type Date struct {
	Kind   DateKind
	Layout string
	Func   DateFunc
}

var (
	// DateDeferred renders dates in time.Time's own text form, RFC 3339
	// with nanoseconds.
	DateDeferred = Date{}
	// DateSecondsSinceEpoch renders the seconds since the Unix epoch as a
	// float.
	DateSecondsSinceEpoch = Date{Kind: DateKindSeconds}
	// DateMillisecondsSinceEpoch renders DateSecondsSinceEpoch * 1000.
	DateMillisecondsSinceEpoch = Date{Kind: DateKindMilliseconds}
	// DateISO8601 renders UTC text without fractional seconds.
	DateISO8601 = Date{Kind: DateKindISO8601}
)

// DateFormatted renders dates with t.Format(layout).
func DateFormatted(layout string) Date {
	return Date{Kind: DateKindFormatted, Layout: layout}
}

func DateCustom(f DateFunc) Date {
	return Date{Kind: DateKindCustom, Func: f}
}

// ParseDate parses "deferred", "seconds", "milliseconds", "iso8601" or
// "layout:<time layout>".
func ParseDate(v string) (Date, error) {
	if layout, ok := strings.CutPrefix(v, "layout:"); ok {
		d := DateFormatted(layout)
		return d, d.Check()
	}
	switch v {
	case "", "deferred":
		return DateDeferred, nil
	case "seconds":
		return DateSecondsSinceEpoch, nil
	case "milliseconds", "millis":
		return DateMillisecondsSinceEpoch, nil
	case "iso8601":
		return DateISO8601, nil
	}
	return Date{}, fmt.Errorf("%w: date strategy %q", ErrUnsupportedStrategy, v)
}

func (d Date) String() string {
	if d.Kind == DateKindFormatted {
		return "layout:" + d.Layout
	}
	return d.Kind.String()
}

// Check reports whether d can be applied.
func (d Date) Check() error {
	switch d.Kind {
	case DateKindDeferred, DateKindSeconds, DateKindMilliseconds, DateKindISO8601:
		return nil
	case DateKindFormatted:
		if d.Layout == "" {
			return fmt.Errorf("%w: empty date layout", ErrUnsupportedStrategy)
		}
		return nil
	case DateKindCustom:
		if d.Func == nil {
			return fmt.Errorf("%w: custom date strategy without a function", ErrUnsupportedStrategy)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedStrategy, d.Kind)
	}
}

// Node converts t into the value which is rendered in its place. opts
// configure the Encoder handed to a custom function.
func (d Date) Node(t time.Time, opts ...container.Option) (*ir.Node, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	switch d.Kind {
	case DateKindSeconds:
		return ir.FromFloat(unixSeconds(t)), nil
	case DateKindMilliseconds:
		return ir.FromFloat(unixSeconds(t) * 1000), nil
	case DateKindISO8601:
		return ir.FromString(t.UTC().Format(ISO8601Layout)), nil
	case DateKindFormatted:
		return ir.FromString(t.Format(d.Layout)), nil
	case DateKindCustom:
		e := container.NewEncoder(opts...)
		if err := d.Func(t, e); err != nil {
			return nil, err
		}
		return customResult(e), nil
	}
	text, err := t.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", container.ErrInvalidValue, err)
	}
	return ir.FromString(string(text)), nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func customResult(e *container.Encoder) *ir.Node {
	if e.Empty() {
		return ir.FromKeyVals(nil)
	}
	return e.JSONValue()
}
