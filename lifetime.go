package berth

import "strings"

// Lifetime governs how the container reuses instances of a registration.
// The zero value is not a valid lifetime.
type Lifetime int

const (
	// Singleton is one instance for the life of the process.
	Singleton Lifetime = iota + 1

	// Scoped is one instance per logical scope, e.g. an HTTP request.
	Scoped

	// Transient is a new instance on every request.
	Transient
)

// String returns the lower-case name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// IsValid reports whether l is one of Singleton, Scoped or Transient.
func (l Lifetime) IsValid() bool {
	return l >= Singleton && l <= Transient
}

// ParseLifetime converts a lifetime name (case-insensitive) into a Lifetime.
func ParseLifetime(s string) (Lifetime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singleton":
		return Singleton, nil
	case "scoped":
		return Scoped, nil
	case "transient":
		return Transient, nil
	default:
		return 0, ErrInvalidLifetime(s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifetime) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, ErrInvalidLifetime(int(l))
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lifetime) UnmarshalText(text []byte) error {
	parsed, err := ParseLifetime(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
