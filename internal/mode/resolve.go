package mode

// Source names where an initial mode came from.
type Source string

const (
	SourceStored  Source = "stored"
	SourceSystem  Source = "system"
	SourceDefault Source = "default"
)

// Resolve applies the startup priority without building a controller:
// a valid stored value, then the system preference, then Light.
// Store errors and malformed values fall through to the next source.
func Resolve(store Store, pref Preference) (Mode, Source) {
	if store != nil {
		if raw, ok, err := store.Get(StorageKey); err == nil && ok {
			if m, valid := Parse(raw); valid {
				return m, SourceStored
			}
		}
	}
	if pref != nil {
		if dark, ok := pref.PrefersDark(); ok {
			return FromDark(dark), SourceSystem
		}
	}
	return Light, SourceDefault
}
