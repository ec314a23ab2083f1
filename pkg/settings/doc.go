// Package settings reads and writes single desktop appearance settings.
//
// Two kinds of backing store exist:
//
//   - schema stores, addressed by schema and key (gsettings)
//   - property stores, addressed by channel and property path (xfconf)
//
// Both are driven through their command line clients. A missing client
// binary is reported as ErrStoreUnavailable so callers can skip the one
// setting and continue.
package settings
