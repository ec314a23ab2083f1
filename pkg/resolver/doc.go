// Package resolver turns the loaded config record and the live host into
// the desired state of one run.
//
// It decides which components may be offered (Eligible), which display
// names they are applied under (DisplayNames), whether the record on disk
// can be trusted (Validate) and, when it cannot or the user asked, runs the
// interactive configuration through a Prompter.
package resolver
