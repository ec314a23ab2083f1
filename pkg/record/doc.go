// Package record reads and writes the config record, the durable state of
// the installer.
//
// The record is a text file of "key: value" lines in blank-line separated
// sections:
//
//	This file is generated and used by the install script.
//	color: blue
//	theme: dark
//	enabled: gtk3 gtk4-libadwaita icons cursors sounds gnome-shell
//
//	gnome: 43
//	desktops: gnome=43
//	firefox: flatpak standard
//	vscode: code
//
//	dg-adw-gtk3_version: <40 character token>
//	...
//
//	old_gtk3_gnome: Adwaita
//
// Reading is tolerant: malformed and unknown lines are skipped, and the
// shapes written by older installers are migrated by the rules in
// legacy.go. Writing is deterministic, so writing the same Record twice
// yields identical bytes.
package record
