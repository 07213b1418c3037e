// Package coverage indexes static reachability and observed coverage.
//
// Both structures share one key space: a 0-based concrete key per level
// listed in the reachability manifest, plus an aggregate bucket holding
// the union over all levels. The aggregate is what decides a report row's
// overall class; it is never rendered as a column.
package coverage
