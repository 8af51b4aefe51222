package berth

import "reflect"

// Scan returns every type declared in scopes that carries at least one
// marker, ordered by QualifiedName. Types with equal names keep scope order,
// then declaration order. Duplicate scopes are visited once.
//
// Every scope is listed before any filtering happens, so an uninspectable
// scope aborts the scan before any type is considered.
func Scan(md Metadata, scopes []string) ([]reflect.Type, error) {
	seen := make(map[string]bool, len(scopes))
	listed := make([][]reflect.Type, 0, len(scopes))

	for _, scope := range scopes {
		if seen[scope] {
			continue
		}

		seen[scope] = true

		types, err := md.ListTypes(scope)
		if err != nil {
			return nil, err
		}

		listed = append(listed, types)
	}

	var candidates []reflect.Type

	for _, types := range listed {
		for _, t := range types {
			if len(md.Markers(t)) > 0 {
				candidates = append(candidates, t)
			}
		}
	}

	sortByName(candidates)

	return candidates, nil
}
