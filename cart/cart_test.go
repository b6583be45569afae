package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndresWalter/petzone--template/localstore"
	"github.com/AndresWalter/petzone--template/models"
)

func TestAddIncrementsExistingLine(t *testing.T) {
	m := New(localstore.NewMemory())

	m.Add("1")
	m.Add("1")
	m.Add("1")

	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, m.Count())
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	m := New(localstore.NewMemory())

	m.Add("b")
	m.Add("a")
	m.Add("c")
	m.Add("a")

	lines := m.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "b", lines[0].ProductID)
	assert.Equal(t, "a", lines[1].ProductID)
	assert.Equal(t, "c", lines[2].ProductID)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	m := New(localstore.NewMemory())
	m.Add("1")
	m.Add("2")

	m.UpdateQuantity("1", 0)
	require.Len(t, m.Lines(), 1)

	m.UpdateQuantity("2", -1)
	assert.Empty(t, m.Lines())
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	m := New(localstore.NewMemory())
	m.Add("1")

	m.UpdateQuantity("1", 12)
	lines := m.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 12, lines[0].Quantity)

	// Unknown IDs are ignored.
	m.UpdateQuantity("nope", 5)
	assert.Len(t, m.Lines(), 1)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	m := New(localstore.NewMemory())
	m.Add("1")

	m.Remove("missing")
	assert.Len(t, m.Lines(), 1)

	m.Remove("1")
	assert.Empty(t, m.Lines())
}

func TestClearEmptiesCart(t *testing.T) {
	m := New(localstore.NewMemory())
	m.Add("1")
	m.Add("2")

	m.Clear()
	assert.Empty(t, m.Lines())
	assert.Equal(t, 0, m.Count())
}

func TestRoundTripThroughStore(t *testing.T) {
	store := localstore.NewMemory()

	m := New(store)
	m.Add("3")
	m.Add("1")
	m.Add("1")
	m.UpdateQuantity("3", 4)

	restored := New(store)
	assert.Equal(t, []models.CartLine{
		{ProductID: "3", Quantity: 4},
		{ProductID: "1", Quantity: 2},
	}, restored.Lines())
}

func TestCorruptPayloadFallsBackToEmptyCart(t *testing.T) {
	store := localstore.NewMemory()
	require.NoError(t, store.Set(StorageKey, "{not json"))

	m := New(store)
	assert.Empty(t, m.Lines())

	// The manager stays usable after the fallback.
	m.Add("1")
	assert.Len(t, m.Lines(), 1)
}
