// Package berth registers implementation types into a dependency-injection
// container from declarations made next to the types themselves.
//
// A type declares one or more markers, each naming a lifetime and optionally
// the contract to register under:
//
//	func init() {
//	    berth.DeclareContract[IAlpha]()
//	    berth.Declare[*Alpha](berth.Mark(berth.WithLifetime(berth.Singleton)))
//	    berth.Declare[*Delta](berth.Mark(berth.As[*Delta]()))
//	}
//
// A configuration pass scans one or more scopes (package paths), orders the
// marked types by qualified name and issues one Container.Add per resolved
// contract:
//
//	services := berth.NewCollection()
//	if _, err := berth.ConfigureDeclaratively(services); err != nil {
//	    return err
//	}
//
// When a marker names no contract, the type is registered under the declared
// interfaces it implements that its bases (embedded fields) do not, keeping
// only the most specific ones.
//
// The berthgen command generates the init functions above from
// //berth:implementation and //berth:contract directive comments.
package berth
