// Package enable applies the installed themes to the desktop settings.
//
// For every facet (GTK theme, icons, cursors, sounds, shell and window
// manager themes) and every detected desktop the Engine walks a small
// state machine:
//
//   - Skip: the component is disabled, the desktop is absent or filtered
//     out, the facet has no display name there, or the backing store is
//     unavailable.
//   - Capture: the live value is read. It becomes the component's snapshot
//     for that desktop unless a snapshot already exists that qualia did not
//     write itself.
//   - Apply: the desired value is written when it differs from the live
//     one.
//
// Running the engine twice without changes writes nothing the second time.
package enable
