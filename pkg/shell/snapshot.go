package shell

import (
	"reflect"
	"sort"
)

// Snapshot returns every surface's properties keyed as surface.KEY. Function
// values are replaced by "<func>" so the result can be encoded.
func (a *App) Snapshot() map[string]interface{} {
	out := make(map[string]interface{})
	for _, s := range a.surfaces {
		for key, value := range s.Model().Snapshot() {
			out[s.Name()+"."+key] = printable(value)
		}
	}
	return out
}

// Property returns one value of Snapshot.
func (a *App) Property(property string) (interface{}, bool, error) {
	key, model, err := a.lookupProperty(property)
	if err != nil {
		return nil, false, err
	}
	if !model.IsSet(key) {
		if _, ok := key.Default(); !ok {
			return nil, false, nil
		}
	}
	return printable(model.Value(key)), true, nil
}

// PropertyNames lists every surface.KEY name in order.
func (a *App) PropertyNames() []string {
	var names []string
	for _, s := range a.surfaces {
		for _, key := range s.Model().Keys() {
			names = append(names, s.Name()+"."+key.Name())
		}
	}
	sort.Strings(names)
	return names
}

func printable(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		if reflect.ValueOf(v).IsNil() {
			return nil
		}
		return "<func>"
	}
	return v
}
