package types

// OverlayMode represents the current overlay state
type OverlayMode int

const (
	// OverlayModeNone indicates no overlay is active
	OverlayModeNone OverlayMode = iota
	// OverlayModeHelp shows the help overlay
	OverlayModeHelp
	// OverlayModeProperties shows the live property table
	OverlayModeProperties
	// OverlayModeJournal shows the shell's journal
	OverlayModeJournal
)
