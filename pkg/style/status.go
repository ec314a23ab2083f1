package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// FacetState is the state of one desktop setting in the status view
type FacetState string

const (
	FacetApplied    FacetState = "applied"    // live value is the qualia theme
	FacetPending    FacetState = "pending"    // enabled, but not applied yet
	FacetOff        FacetState = "off"        // component not enabled
	FacetUnreadable FacetState = "unreadable" // the store could not be read
)

// StateStyle returns the pterm style of a facet state badge
func StateStyle(state FacetState) *pterm.Style {
	switch state {
	case FacetApplied:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case FacetPending:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case FacetUnreadable:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders state as a fixed width badge
func Badge(state FacetState) string {
	return StateStyle(state).Sprint(fmt.Sprintf(" %-10s ", state))
}
