package berth_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xraph/berth"
	"github.com/xraph/berth/internal/fixtures/bare"
	"github.com/xraph/berth/internal/fixtures/catalog"
)

type IAlpha interface{ Alpha() string }

type IBeta interface{ Beta() string }

type IGamma interface{ Gamma() string }

type Alpha struct{}

func (*Alpha) Alpha() string { return "alpha" }

type Beta struct{}

func (*Beta) Beta() string { return "beta" }

type Delta struct{}

type Gamma struct{}

func (*Gamma) Gamma() string { return "gamma" }

func init() {
	berth.DeclareContract[IAlpha]()
	berth.DeclareContract[IGamma]()

	berth.Declare[*Alpha](berth.Mark(berth.WithLifetime(berth.Singleton)))
	berth.Declare[*Beta](berth.Mark(berth.As[IBeta]()))
	berth.Declare[*Delta](berth.Mark(berth.As[*Delta]()))
	berth.Declare[*Gamma](berth.Mark())
}

func verifyDescriptor[C, T any](t *testing.T, lifetime berth.Lifetime, d berth.ServiceDescriptor) {
	t.Helper()

	assert.Equal(t, reflect.TypeFor[C](), d.Contract)
	assert.Equal(t, reflect.TypeFor[T](), d.Implementation)
	assert.Equal(t, lifetime, d.Lifetime)
}

func TestConfigureDeclaratively_CallerScope(t *testing.T) {
	services := berth.NewCollection()

	output, err := berth.ConfigureDeclaratively(services)
	require.NoError(t, err)

	// The same container is returned
	assert.Same(t, services, output)

	descriptors := services.Descriptors()
	require.Len(t, descriptors, 4)
	verifyDescriptor[IAlpha, *Alpha](t, berth.Singleton, descriptors[0])
	verifyDescriptor[IBeta, *Beta](t, berth.Scoped, descriptors[1])
	verifyDescriptor[*Delta, *Delta](t, berth.Scoped, descriptors[2])
	verifyDescriptor[IGamma, *Gamma](t, berth.Scoped, descriptors[3])
}

func TestConfigureDeclaratively_ExplicitScope(t *testing.T) {
	services := berth.NewCollection()

	output, err := berth.ConfigureDeclaratively(services, berth.ScopeOf[catalog.One]())
	require.NoError(t, err)
	assert.Same(t, services, output)

	descriptors := services.Descriptors()
	require.Len(t, descriptors, 4)
	verifyDescriptor[catalog.IOne, *catalog.One](t, berth.Scoped, descriptors[0])
	verifyDescriptor[catalog.IThreeA, *catalog.Three](t, berth.Singleton, descriptors[1])
	verifyDescriptor[catalog.ITwoA, *catalog.Two](t, berth.Transient, descriptors[2])
	verifyDescriptor[catalog.ITwoB, *catalog.Two](t, berth.Transient, descriptors[3])

	assert.False(t, berth.HasFor[catalog.IThreeB](services))
}

func TestConfigureDeclaratively_SeveralScopes(t *testing.T) {
	services := berth.NewCollection()

	_, err := berth.ConfigureDeclaratively(services, berth.ScopeOf[catalog.One](), berth.ScopeOf[Alpha]())
	require.NoError(t, err)

	// Ordered by qualified name across scopes: "berth/internal/..." sorts before "berth_test"
	descriptors := services.Descriptors()
	require.Len(t, descriptors, 8)
	verifyDescriptor[catalog.IOne, *catalog.One](t, berth.Scoped, descriptors[0])
	verifyDescriptor[IAlpha, *Alpha](t, berth.Singleton, descriptors[4])
}

func TestConfigureDeclaratively_UnknownScope(t *testing.T) {
	services := berth.NewCollection()

	output, err := berth.ConfigureDeclaratively(services, "example.com/does/not/exist")
	assert.ErrorIs(t, err, berth.ErrScopeLoadSentinel)
	assert.Same(t, services, output)
	assert.Equal(t, 0, services.Len())
}

func TestConfigureDeclaratively_EmptyCallerScope(t *testing.T) {
	services := berth.NewCollection()

	// The calling package declares nothing
	output, err := bare.Configure(services)
	require.NoError(t, err)
	assert.Same(t, services, output)
	assert.Equal(t, 0, services.Len())

	plan, err := bare.Plan()
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestConfigureDeclaratively_EmptyScopeOf(t *testing.T) {
	services := berth.NewCollection()

	_, err := berth.ConfigureDeclaratively(services, berth.ScopeOf[bare.Clock](), berth.ScopeOf[catalog.One]())
	require.NoError(t, err)
	assert.Equal(t, 4, services.Len())
}

func TestConfigureDeclaratively_Deterministic(t *testing.T) {
	first := berth.NewCollection()
	second := berth.NewCollection()

	_, err := berth.ConfigureDeclaratively(first, berth.ScopeOf[catalog.One]())
	require.NoError(t, err)

	_, err = berth.ConfigureDeclaratively(second, berth.ScopeOf[catalog.One]())
	require.NoError(t, err)

	assert.Equal(t, first.Descriptors(), second.Descriptors())
}

func TestConfigurator_Options(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	reg := berth.NewRegistry()
	require.NoError(t, reg.AddContract("example.com/app", reflect.TypeFor[IAlpha]()))
	require.NoError(t, reg.Add("example.com/app", berth.Type[*Alpha](berth.Mark())))

	var seen []berth.ServiceDescriptor

	configurator := berth.NewConfigurator(
		berth.WithMetadata(reg),
		berth.WithLogger(zap.New(core)),
		berth.WithHooks(&berth.FuncHook{
			AfterRegisterFunc: func(d berth.ServiceDescriptor) {
				seen = append(seen, d)
			},
		}),
	)

	services := berth.NewCollection()
	_, err := configurator.Configure(services, "example.com/app")
	require.NoError(t, err)

	require.Len(t, seen, 1)
	verifyDescriptor[IAlpha, *Alpha](t, berth.Scoped, seen[0])
	assert.Equal(t, 1, logs.FilterMessage("service added").Len())
}

func TestConfigurator_Plan(t *testing.T) {
	plan, err := berth.NewConfigurator().Plan(berth.ScopeOf[catalog.One]())
	require.NoError(t, err)
	require.Len(t, plan, 4)
	verifyDescriptor[catalog.IThreeA, *catalog.Three](t, berth.Singleton, plan[1])

	// Plan with no scope uses the caller's package
	plan, err = berth.NewConfigurator().Plan()
	require.NoError(t, err)
	assert.Len(t, plan, 4)
}

func TestConfigurator_PlanPartialOnFailure(t *testing.T) {
	reg := berth.NewRegistry()
	require.NoError(t, reg.AddContract("example.com/app", reflect.TypeFor[IAlpha]()))
	require.NoError(t, reg.AddAll("example.com/app",
		berth.Type[*Alpha](berth.Mark()),
		berth.Type[*Delta](berth.Mark()),
	))

	plan, err := berth.NewConfigurator(berth.WithMetadata(reg)).Plan("example.com/app")
	assert.ErrorIs(t, err, berth.ErrNoContractSentinel)
	require.Len(t, plan, 1)
	verifyDescriptor[IAlpha, *Alpha](t, berth.Scoped, plan[0])
}

func TestConfigureDeclaratively_ContainerFunc(t *testing.T) {
	var implementations []string

	container := berth.ContainerFunc(func(contract, implementation reflect.Type, lifetime berth.Lifetime) {
		implementations = append(implementations, implementation.Elem().Name())
	})

	_, err := berth.ConfigureDeclaratively(container)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta", "Delta", "Gamma"}, implementations)
}
