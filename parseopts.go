package mexe

// DefaultMaxDepth is the parenthesis nesting depth allowed when no MaxDepth
// option is given.
const DefaultMaxDepth = 10000

// ParseOption is an option for tokenizing and parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	unicodeopt struct{}
	depthopt   int
)

// parsectx holds the settings for one parse. It is also a ParseOption.
type parsectx struct {
	// unicode indicates that × and ÷ are accepted as operators.
	unicode bool
	// maxDepth is the maximum parenthesis nesting depth, or 0 for no limit.
	maxDepth int
}

var defaultParsectx = parsectx{maxDepth: DefaultMaxDepth}

// newParsectx applies opts in order to the default settings.
func newParsectx(opts []ParseOption) parsectx {
	p := defaultParsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}

// UnicodeOperators allows the multiplication sign × (U+00D7) and the division
// sign ÷ (U+00F7) as alternate spellings of * and /. All other non-ASCII input
// remains invalid.
func UnicodeOperators() ParseOption {
	return unicodeopt{}
}

func (unicodeopt) parseOption(p parsectx) parsectx {
	p.unicode = true
	return p
}

// MaxDepth sets the maximum parenthesis nesting depth. Input nested more
// deeply fails with a *DepthError. With n = 0 there is no limit, and very
// deeply nested input is limited only by the goroutine stack size. Panics if
// n is negative.
func MaxDepth(n int) ParseOption {
	if n < 0 {
		panic("mexe: negative max depth")
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	return p
}

// ParsingPreset resolves a list of options once so that it can be reused
// across many calls. A preset panics when applied after any option that
// changed the defaults, but it is safe to apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	p := newParsectx(opts)
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p != defaultParsectx {
		panic("mexe: preset applied to non-default parse config")
	}
	return *o
}
