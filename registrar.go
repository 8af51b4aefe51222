package berth

import (
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registrar turns markers into container registrations.
type Registrar struct {
	md       Metadata
	resolver *Resolver
	hooks    *hookChain
	logger   *zap.Logger
}

// NewRegistrar creates a registrar over md. A nil logger disables logging.
func NewRegistrar(md Metadata, logger *zap.Logger, hooks ...Hook) *Registrar {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registrar{
		md:       md,
		resolver: NewResolver(md),
		hooks:    newHookChain(hooks...),
		logger:   logger,
	}
}

// Descriptors returns the registrations t's markers produce, in marker
// order. Implicit markers yield one descriptor per resolved contract.
func (r *Registrar) Descriptors(t reflect.Type) ([]ServiceDescriptor, error) {
	var descriptors []ServiceDescriptor

	for _, marker := range r.md.Markers(t) {
		if !marker.Lifetime.IsValid() {
			return nil, ErrInvalidLifetime(int(marker.Lifetime))
		}

		if !marker.IsImplicit() {
			descriptors = append(descriptors, ServiceDescriptor{
				Contract:       marker.Contract,
				Implementation: t,
				Lifetime:       marker.Lifetime,
			})

			continue
		}

		contracts, err := r.resolver.Resolve(t)
		if err != nil {
			return nil, err
		}

		for _, contract := range contracts {
			descriptors = append(descriptors, ServiceDescriptor{
				Contract:       contract,
				Implementation: t,
				Lifetime:       marker.Lifetime,
			})
		}
	}

	return descriptors, nil
}

// Register issues the registrations of types, in order, against c.
// A type whose markers cannot be resolved registers nothing and aborts the
// pass; registrations of earlier types are kept.
func (r *Registrar) Register(c Container, types []reflect.Type) error {
	log := r.logger.With(zap.String("pass_id", uuid.NewString()))
	count := 0

	for _, t := range types {
		descriptors, err := r.Descriptors(t)
		if err != nil {
			log.Error("configuration pass aborted",
				zap.String("type", QualifiedName(t)),
				zap.Int("registrations", count),
				zap.Error(err),
			)

			return err
		}

		for _, d := range descriptors {
			if err := r.hooks.beforeRegister(d); err != nil {
				log.Error("registration rejected",
					zap.String("contract", d.ContractName()),
					zap.String("type", d.ImplementationName()),
					zap.Error(err),
				)

				return NewRegistrationRejected(d.ContractName(), d.ImplementationName(), err)
			}

			c.Add(d.Contract, d.Implementation, d.Lifetime)
			count++

			log.Debug("service added",
				zap.String("contract", d.ContractName()),
				zap.String("type", d.ImplementationName()),
				zap.Stringer("lifetime", d.Lifetime),
			)

			r.hooks.afterRegister(d)
		}
	}

	log.Info("configuration pass complete",
		zap.Int("types", len(types)),
		zap.Int("registrations", count),
	)

	return nil
}
