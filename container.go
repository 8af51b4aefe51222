package berth

import "reflect"

// Container receives registrations. It owns instance creation and lifetime
// enforcement; a configuration pass only calls Add.
type Container interface {
	Add(contract, implementation reflect.Type, lifetime Lifetime)
}

// ContainerFunc adapts a function to Container.
type ContainerFunc func(contract, implementation reflect.Type, lifetime Lifetime)

// Add implements Container.
func (f ContainerFunc) Add(contract, implementation reflect.Type, lifetime Lifetime) {
	f(contract, implementation, lifetime)
}
