package equipment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/id"
)

func TestNewName(t *testing.T) {
	_, err := NewName("Криптомодуль СКЗИ-2")
	assert.NoError(t, err)

	_, err = NewName(strings.Repeat("x", 100))
	assert.NoError(t, err)

	_, err = NewName(strings.Repeat("x", 101))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Equipment name must be between 1 and 100 characters")

	_, err = NewName("   ")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		parsed, err := ParseStatus(strings.ToUpper(string(s)))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid equipment status")
}

func TestEquipment_ChangeStatus(t *testing.T) {
	name, err := NewName("Терминал")
	require.NoError(t, err)
	item := NewEquipment(name, StatusWarehouse, nil)

	assert.Nil(t, item.PreviousStatus())
	assert.Nil(t, item.UpdatedAt())

	actor := id.New()
	item.ChangeStatus(StatusIssued, &actor)

	assert.Equal(t, StatusIssued, item.Status())
	require.NotNil(t, item.PreviousStatus())
	assert.Equal(t, StatusWarehouse, *item.PreviousStatus())
	require.NotNil(t, item.UpdatedAt())
	require.NotNil(t, item.UpdatedByUID())
	assert.Equal(t, actor, *item.UpdatedByUID())
}

func TestEquipment_ChangeStatus_AnyTransitionAllowed(t *testing.T) {
	name, err := NewName("Терминал")
	require.NoError(t, err)

	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			if from == to {
				continue
			}
			item := NewEquipment(name, from, nil)
			item.ChangeStatus(to, nil)
			assert.Equal(t, to, item.Status())
			require.NotNil(t, item.PreviousStatus())
			assert.Equal(t, from, *item.PreviousStatus())
		}
	}
}

func TestEquipment_SetWarehouse_BlankMapsToNil(t *testing.T) {
	name, err := NewName("Терминал")
	require.NoError(t, err)
	item := NewEquipment(name, StatusWarehouse, nil)

	w := "Основной склад"
	item.SetWarehouse(&w)
	require.NotNil(t, item.Warehouse())
	assert.Equal(t, "Основной склад", *item.Warehouse())

	blank := "   "
	item.SetWarehouse(&blank)
	assert.Nil(t, item.Warehouse())
}
