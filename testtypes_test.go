package berth

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScope = "example.com/app/services"

// Contract hierarchy used across tests.
type (
	IReader interface{ Read() }
	IWriter interface{ Write() }

	IReadWriter interface {
		IReader
		IWriter
	}

	ILevel1 interface{ Level1() }

	ILevel2 interface {
		ILevel1
		Level2()
	}

	ILevel3 interface {
		ILevel2
		Level3()
	}

	IParent interface{ Parent() }
	IChild  interface{ Child() }

	IAlpha  interface{ Alpha() }
	ITwoA   interface{ TwoA() }
	ITwoB   interface{ TwoB() }
	IThreeA interface{ ThreeA() }
	IThreeB interface{ ThreeB() }

	// IAlphaTwin has the same method set as IAlpha.
	IAlphaTwin interface{ Alpha() }
)

type readWriter struct{}

func (*readWriter) Read()  {}
func (*readWriter) Write() {}

type levels struct{}

func (*levels) Level1() {}
func (*levels) Level2() {}
func (*levels) Level3() {}

type parent struct{}

func (*parent) Parent() {}

type child struct {
	parent
}

func (*child) Child() {}

type inheritsOnly struct {
	parent
}

// declaredChild implements IParent itself but declares parent as its base.
type declaredChild struct{}

func (*declaredChild) Parent() {}
func (*declaredChild) Child()  {}

type alpha struct{}

func (*alpha) Alpha() {}

type two struct{}

func (*two) TwoA() {}
func (*two) TwoB() {}

type three struct{}

func (*three) ThreeA() {}
func (*three) ThreeB() {}

type delta struct{}

type noContracts struct{}

// testContracts lists every contract declared by newTestRegistry.
var testContracts = []reflect.Type{
	reflect.TypeFor[IReader](),
	reflect.TypeFor[IWriter](),
	reflect.TypeFor[IReadWriter](),
	reflect.TypeFor[ILevel1](),
	reflect.TypeFor[ILevel2](),
	reflect.TypeFor[ILevel3](),
	reflect.TypeFor[IParent](),
	reflect.TypeFor[IChild](),
	reflect.TypeFor[IAlpha](),
	reflect.TypeFor[ITwoA](),
	reflect.TypeFor[ITwoB](),
	reflect.TypeFor[IThreeA](),
	reflect.TypeFor[IThreeB](),
}

// newTestRegistry creates a registry with the test contracts and decls
// declared under testScope.
func newTestRegistry(t *testing.T, decls ...Declaration) *Registry {
	t.Helper()

	reg := NewRegistry()
	for _, contract := range testContracts {
		require.NoError(t, reg.AddContract(testScope, contract))
	}

	require.NoError(t, reg.AddAll(testScope, decls...))

	return reg
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
