package types

// PressTarget names a control a press event clicks.
type PressTarget string

const (
	TargetNewTab                PressTarget = "new_tab"                 // TargetNewTab is the toolbar's new tab button.
	TargetIdentityDisc          PressTarget = "identity_disc"           // TargetIdentityDisc is the toolbar's account avatar.
	TargetMenu                  PressTarget = "menu"                    // TargetMenu is the app menu button.
	TargetTile                  PressTarget = "tile"                    // TargetTile is a click on the site tile.
	TargetTileLong              PressTarget = "tile_long"               // TargetTileLong is a long click on the site tile.
	TargetInterstitialLearnMore PressTarget = "interstitial_learn_more" // TargetInterstitialLearnMore is the interstitial's learn more link.
	TargetInterstitialContinue  PressTarget = "interstitial_continue"   // TargetInterstitialContinue is the interstitial's continue button.
	TargetEditURLShare          PressTarget = "edit_url_share"          // TargetEditURLShare is the edit URL row's share action.
	TargetEditURLCopy           PressTarget = "edit_url_copy"           // TargetEditURLCopy is the edit URL row's copy action.
	TargetEditURLEdit           PressTarget = "edit_url_edit"           // TargetEditURLEdit is the edit URL row's edit action.
)

// PressTargets lists every target in declaration order.
func PressTargets() []PressTarget {
	return []PressTarget{
		TargetNewTab, TargetIdentityDisc, TargetMenu, TargetTile, TargetTileLong,
		TargetInterstitialLearnMore, TargetInterstitialContinue,
		TargetEditURLShare, TargetEditURLCopy, TargetEditURLEdit,
	}
}

// Valid reports whether t is a known target.
func (t PressTarget) Valid() bool {
	for _, known := range PressTargets() {
		if t == known {
			return true
		}
	}
	return false
}
