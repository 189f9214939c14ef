// Package nlq translates free-text activity questions into a single
// parameterized SQL statement over a fixed schema profile, normalizes the
// fetched rows, and renders a deterministic narrative from them. It
// recognizes a small closed set of lexical cues; it is not a general
// language-understanding layer.
package nlq

import "time"

// DateOp is the comparison applied to the cell date column.
type DateOp string

const (
	DateEquals    DateOp = "="
	DateOnOrAfter DateOp = ">="
)

// DateRange constrains the cell date column. Exactly one is produced per
// query; recency is assumed unless the text overrides it.
type DateRange struct {
	Op   DateOp
	Date time.Time
}

// UserMatchKind discriminates how a user predicate matches.
type UserMatchKind int

const (
	// UserMatchID matches the joined user table's numeric id.
	UserMatchID UserMatchKind = iota
	// UserMatchUsername matches the username column with containment.
	UserMatchUsername
)

// UserPredicate constrains the joined user table. At most one is
// extracted per query.
type UserPredicate struct {
	Kind     UserMatchKind
	ID       int64
	Username string
}

// Predicates is the immutable constraint set extracted from one query.
type Predicates struct {
	// User is nil when the text names no user.
	User *UserPredicate
	// Date is always present.
	Date DateRange
}
