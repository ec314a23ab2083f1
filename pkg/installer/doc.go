// Package installer runs the installer's commands: install, restore,
// clean and status.
//
// An install run goes through these stages, in order:
//
//  1. Refuse to run as root and check the required tools.
//  2. Load the config record, migrating it from the legacy location.
//  3. Resolve the desired configuration, asking questions as needed,
//     and write the record.
//  4. For each group in build order, update its sources, compare its
//     version token and rebuild it when stale. The record is rewritten
//     after every group so an aborted run keeps what was completed.
//  5. Apply the theme names to the desktop settings stores, then write
//     the record with the captured snapshots.
//
// Every fatal problem is returned as an error; soft ones are reported
// through the Console and the run continues.
package installer
