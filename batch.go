package berth

// AddAll records several declarations under scope in a single call.
// Returns the first error; declarations before it stay recorded.
//
// Example:
//
//	err := reg.AddAll("app/services",
//	    berth.Type[*Alpha](berth.Mark(berth.WithLifetime(berth.Singleton))),
//	    berth.Type[*Beta](berth.Mark(berth.As[IBeta]())),
//	)
func (r *Registry) AddAll(scope string, decls ...Declaration) error {
	for _, d := range decls {
		if err := r.Add(scope, d); err != nil {
			return err
		}
	}

	return nil
}

// DeclareAll records a declaration table in DefaultRegistry under the
// caller's package. It panics on the first invalid declaration.
//
// Example:
//
//	func init() {
//	    berth.DeclareAll(
//	        berth.Type[*Alpha](berth.Mark(berth.WithLifetime(berth.Singleton))),
//	        berth.Type[*Delta](berth.Mark(berth.As[*Delta]())),
//	    )
//	}
func DeclareAll(decls ...Declaration) {
	scope := callerScope(0)
	for _, d := range decls {
		mustDeclare(scope, d)
	}
}
