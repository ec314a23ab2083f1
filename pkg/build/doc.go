// Package build turns the resolved configuration into the commands that
// build and install each component group, and runs them.
//
// Planning is pure: a Plan lists the commands for one group given the
// record, the color scheme and the detected desktops. The Builder runs
// plans, updates submodules and reads version tokens. Snap is handled
// separately since its commands depend on what snapd reports at run time.
package build
