package browser

import "github.com/entrhq/modelview/pkg/observer"

// ButtonData describes the identity disc button as the account service
// currently wants it drawn.
type ButtonData struct {
	CanShow     bool
	Image       string
	Description string
	OnClick     func()
	// IPHFeature names the in-product help bubble to show next to the button.
	IPHFeature string
}

// IdentityDisc tracks whether the signed-in account's avatar can be shown.
type IdentityDisc struct {
	canShow *observer.Supplier[bool]
	data    ButtonData
}

// NewIdentityDisc starts hidden with the given button contents.
func NewIdentityDisc(data ButtonData) *IdentityDisc {
	return &IdentityDisc{canShow: observer.NewSupplierWith(false), data: data}
}

// ButtonData returns the current button contents.
func (d *IdentityDisc) ButtonData() ButtonData {
	data := d.data
	data.CanShow = d.canShow.Get()
	return data
}

// SetCanShow changes whether the disc may be shown and notifies observers.
func (d *IdentityDisc) SetCanShow(canShow bool) {
	d.canShow.Set(canShow)
}

// AddObserver follows changes to CanShow.
func (d *IdentityDisc) AddObserver(fn func(bool)) *observer.Subscription[bool] {
	return d.canShow.AddObserver(fn)
}

// RemoveObserver stops following changes.
func (d *IdentityDisc) RemoveObserver(sub *observer.Subscription[bool]) {
	d.canShow.RemoveObserver(sub)
}

// ObserverCount returns the number of observers.
func (d *IdentityDisc) ObserverCount() int {
	return d.canShow.ObserverCount()
}
