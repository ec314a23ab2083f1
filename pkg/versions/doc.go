// Package versions decides which component groups need a rebuild.
//
// Every group shares three reasons: the checked out source moved away from
// the version token recorded at the last build, the whole configuration was
// asked again, or the run was forced. On top of those each group declares
// its own triggers (types.GroupInfo.Triggers), so a change that only
// concerns one group never rebuilds the others.
package versions
