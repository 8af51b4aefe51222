package berth

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_AddAndLookup(t *testing.T) {
	c := NewCollection()

	c.Add(typeOf[IAlpha](), typeOf[*alpha](), Singleton)
	c.Add(typeOf[ITwoA](), typeOf[*two](), Transient)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has(typeOf[IAlpha]()))
	assert.False(t, c.Has(typeOf[ITwoB]()))

	d, ok := c.Lookup(typeOf[ITwoA]())
	require.True(t, ok)
	assert.Equal(t, typeOf[*two](), d.Implementation)
	assert.Equal(t, Transient, d.Lifetime)

	_, ok = c.Lookup(typeOf[ITwoB]())
	assert.False(t, ok)
}

func TestCollection_LastRegistrationWins(t *testing.T) {
	c := NewCollection()

	c.Add(typeOf[IThreeB](), typeOf[*three](), Transient)
	c.Add(typeOf[IAlpha](), typeOf[*alpha](), Scoped)
	c.Add(typeOf[IThreeB](), typeOf[*three](), Singleton)

	d, ok := LookupFor[IThreeB](c)
	require.True(t, ok)
	assert.Equal(t, Singleton, d.Lifetime)

	all := c.LookupAll(typeOf[IThreeB]())
	require.Len(t, all, 2)
	assert.Equal(t, Transient, all[0].Lifetime)
	assert.Equal(t, Singleton, all[1].Lifetime)

	assert.Equal(t, []reflect.Type{typeOf[IThreeB](), typeOf[IAlpha]()}, c.Contracts())
	assert.Equal(t, 3, c.Len())
}

func TestCollection_DescriptorsAreCopied(t *testing.T) {
	c := NewCollection()
	c.Add(typeOf[IAlpha](), typeOf[*alpha](), Scoped)

	descriptors := c.Descriptors()
	descriptors[0].Lifetime = Transient

	assert.Equal(t, Scoped, c.Descriptors()[0].Lifetime)
}

func TestCollection_HasFor(t *testing.T) {
	c := NewCollection()
	c.Add(typeOf[*delta](), typeOf[*delta](), Scoped)

	assert.True(t, HasFor[*delta](c))
	assert.False(t, HasFor[delta](c))
	assert.Empty(t, c.LookupAll(typeOf[delta]()))
}

func TestCollection_ConcurrentReads(t *testing.T) {
	c := NewCollection()
	c.Add(typeOf[IAlpha](), typeOf[*alpha](), Singleton)

	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, ok := c.Lookup(typeOf[IAlpha]())
			assert.True(t, ok)
		}()
	}

	wg.Wait()
}

func TestServiceDescriptor_String(t *testing.T) {
	d := ServiceDescriptor{
		Contract:       typeOf[IAlpha](),
		Implementation: typeOf[*alpha](),
		Lifetime:       Singleton,
	}

	assert.Equal(t, "berth.IAlpha => *berth.alpha (singleton)", d.String())
	assert.Equal(t, "github.com/xraph/berth.IAlpha", d.ContractName())
	assert.Equal(t, "github.com/xraph/berth.alpha", d.ImplementationName())
}
