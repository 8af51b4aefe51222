package berth

// Hook intercepts registrations issued by a configuration pass.
// Hooks can be used for logging, auditing, validation, testing, etc.
type Hook interface {
	// BeforeRegister is called before a descriptor is added to the container.
	// Return error to abort the pass.
	BeforeRegister(d ServiceDescriptor) error

	// AfterRegister is called after a descriptor was added to the container.
	AfterRegister(d ServiceDescriptor)
}

// hookChain manages multiple hooks.
type hookChain struct {
	hooks []Hook
}

// newHookChain creates a new hook chain.
func newHookChain(hooks ...Hook) *hookChain {
	return &hookChain{
		hooks: append(make([]Hook, 0, len(hooks)), hooks...),
	}
}

// beforeRegister calls BeforeRegister on all hooks, stopping at the first error.
func (h *hookChain) beforeRegister(d ServiceDescriptor) error {
	for _, hook := range h.hooks {
		if err := hook.BeforeRegister(d); err != nil {
			return err
		}
	}
	return nil
}

// afterRegister calls AfterRegister on all hooks.
func (h *hookChain) afterRegister(d ServiceDescriptor) {
	for _, hook := range h.hooks {
		hook.AfterRegister(d)
	}
}

// FuncHook wraps functions as Hook.
type FuncHook struct {
	BeforeRegisterFunc func(d ServiceDescriptor) error
	AfterRegisterFunc  func(d ServiceDescriptor)
}

// BeforeRegister implements Hook.
func (f *FuncHook) BeforeRegister(d ServiceDescriptor) error {
	if f.BeforeRegisterFunc != nil {
		return f.BeforeRegisterFunc(d)
	}
	return nil
}

// AfterRegister implements Hook.
func (f *FuncHook) AfterRegister(d ServiceDescriptor) {
	if f.AfterRegisterFunc != nil {
		f.AfterRegisterFunc(d)
	}
}

// StrictContracts returns a hook that rejects registrations whose
// implementation cannot be assigned to the contract.
func StrictContracts() Hook {
	return &FuncHook{
		BeforeRegisterFunc: func(d ServiceDescriptor) error {
			if d.Implementation.AssignableTo(d.Contract) {
				return nil
			}

			return ErrContractNotImplemented(d.ContractName(), d.ImplementationName())
		},
	}
}
