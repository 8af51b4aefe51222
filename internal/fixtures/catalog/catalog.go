// Package catalog holds declared types used by tests that configure a
// container from another package's scope.
package catalog

// IOne is implemented by One.
//
//berth:contract
type IOne interface {
	One() string
}

// ITwoA is implemented by Two.
//
//berth:contract
type ITwoA interface {
	TwoA() string
}

// ITwoB is implemented by Two.
//
//berth:contract
type ITwoB interface {
	TwoB() string
}

// IThreeA is implemented by Three.
//
//berth:contract
type IThreeA interface {
	ThreeA() string
}

// IThreeB is implemented by Three.
//
//berth:contract
type IThreeB interface {
	ThreeB() string
}

// One is registered under IOne with the default lifetime.
//
//berth:implementation
type One struct{}

func (*One) One() string { return "one" }

// Two is registered under both of its unrelated contracts.
//
//berth:implementation lifetime=transient
type Two struct{}

func (*Two) TwoA() string { return "two-a" }
func (*Two) TwoB() string { return "two-b" }

// Three is registered under IThreeA only.
//
//berth:implementation as=IThreeA lifetime=singleton
type Three struct{}

func (*Three) ThreeA() string { return "three-a" }
func (*Three) ThreeB() string { return "three-b" }

// Four is not marked and is never registered.
type Four struct{}

func (*Four) One() string { return "four" }
