// Package bare declares nothing and configures a container from its own scope.
package bare

import "github.com/xraph/berth"

// Clock is an unmarked type.
type Clock struct{}

// Configure runs a default-scope pass from this package.
func Configure(c berth.Container) (berth.Container, error) {
	return berth.ConfigureDeclaratively(c)
}

// Plan runs a default-scope plan from this package.
func Plan() ([]berth.ServiceDescriptor, error) {
	return berth.NewConfigurator().Plan()
}
