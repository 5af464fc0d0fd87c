// Package view defines the fixed set of dashboard views and the logical
// query each one issues against the remote API.
package view

// View identifies one selectable dashboard section.
type View string

// The full set of views, fixed at build time.
const (
	Overview View = "overview"
	Topics   View = "topics"
	Gainers  View = "gainers"
	Volume   View = "volume"
	Valuable View = "valuable"
	New      View = "new"
	Active   View = "active"
	Creators View = "creators"
	Traders  View = "traders"
	Whales   View = "whales"
)

// All returns every view in display order.
func All() []View {
	return []View{
		Overview, Topics, Gainers, Volume, Valuable,
		New, Active, Creators, Traders, Whales,
	}
}

// Parse maps a string to a View. The second return is false for anything
// outside the fixed set.
func Parse(s string) (View, bool) {
	v := View(s)
	if v.Valid() {
		return v, true
	}
	return "", false
}

// Valid reports whether v is a member of the fixed set.
func (v View) Valid() bool {
	switch v {
	case Overview, Topics, Gainers, Volume, Valuable,
		New, Active, Creators, Traders, Whales:
		return true
	}
	return false
}

// Default query parameters. Counts mirror the remote API defaults; the
// whale threshold is the minimum USD value for a trade to count as a whale.
const (
	DefaultCoinCount    = 20
	DefaultTraderCount  = 50
	DefaultCreatorCount = 20
	DefaultWhaleMinUSD  = 1000
)

// Query is the logical request a view issues. It is derived from the view,
// never constructed independently by callers of the data layer.
type Query struct {
	View   View
	Count  int     // list length for ranked views, 0 where not applicable
	MinUSD float64 // whale threshold, 0 for all other views
}

// Query derives the query for v using default parameters.
func (v View) Query() Query {
	switch v {
	case Gainers, Volume, Valuable, New, Active:
		return Query{View: v, Count: DefaultCoinCount}
	case Traders:
		return Query{View: v, Count: DefaultTraderCount}
	case Creators:
		return Query{View: v, Count: DefaultCreatorCount}
	case Whales:
		return Query{View: v, MinUSD: DefaultWhaleMinUSD}
	default:
		return Query{View: v}
	}
}

// QueryWithCount derives the query for v with an explicit list length.
// Views without a count parameter ignore it.
func (v View) QueryWithCount(count int) Query {
	q := v.Query()
	if q.Count > 0 && count > 0 {
		q.Count = count
	}
	return q
}
