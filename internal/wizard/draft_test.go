package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahelnejat/Luna/internal/catalog"
)

func mustItem(t *testing.T, categoryID int, name string) (catalog.ServiceCategory, catalog.ServiceItem) {
	t.Helper()
	cat, item, ok := catalog.FindItem(categoryID, name)
	require.True(t, ok, "catalog item %d/%s", categoryID, name)
	return *cat, *item
}

func TestDraftAddServiceDeduplicates(t *testing.T) {
	d := NewDraft()
	cat, item := mustItem(t, 1, "HairCut")

	d.AddService(cat, item)
	d.AddService(cat, item)
	d.AddService(cat, item)

	assert.Len(t, d.Services(), 1)
}

func TestDraftInsertionOrderPreserved(t *testing.T) {
	d := NewDraft()
	cut, cutItem := mustItem(t, 1, "HairCut")
	color, colorItem := mustItem(t, 2, "Full Color")
	beauty, makeupItem := mustItem(t, 4, "Makeup")

	d.AddService(color, colorItem)
	d.AddService(cut, cutItem)
	d.AddService(beauty, makeupItem)

	names := []string{}
	for _, s := range d.Services() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Full Color", "HairCut", "Makeup"}, names)
}

func TestDraftRemoveService(t *testing.T) {
	d := NewDraft()
	cat, item := mustItem(t, 1, "HairCut")
	d.AddService(cat, item)

	d.RemoveService(ServiceKey{CategoryID: 1, Name: "HairCut"})
	assert.Empty(t, d.Services())

	// removing again, or removing something never added, must not panic
	d.RemoveService(ServiceKey{CategoryID: 1, Name: "HairCut"})
	d.RemoveService(ServiceKey{CategoryID: 3, Name: "Perm"})
	assert.Empty(t, d.Services())
}

func TestDraftSameNameDifferentCategory(t *testing.T) {
	d := NewDraft()

	// identity is the (category, name) pair, not the name alone
	d.AddService(
		catalog.ServiceCategory{ID: 1, Category: "A"},
		catalog.ServiceItem{Name: "Consult", Price: "Free", Duration: 30},
	)
	d.AddService(
		catalog.ServiceCategory{ID: 2, Category: "B"},
		catalog.ServiceItem{Name: "Consult", Price: "Free", Duration: 30},
	)

	assert.Len(t, d.Services(), 2)
}

func TestDraftTotals(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, Totals{}, d.Totals())

	cut, cutItem := mustItem(t, 1, "HairCut") // $50+, 45 min
	color, colorItem := mustItem(t, 2, "Full Color") // $125+, 90 min
	d.AddService(cut, cutItem)
	d.AddService(color, colorItem)

	assert.Equal(t, Totals{DurationMinutes: 135, MinPrice: 175}, d.Totals())

	// unparsable price labels contribute zero but still count toward duration
	corr, corrItem := mustItem(t, 2, "Color Correction") // Consultation, 180 min
	d.AddService(corr, corrItem)
	assert.Equal(t, Totals{DurationMinutes: 315, MinPrice: 175}, d.Totals())

	d.RemoveService(ServiceKey{CategoryID: 2, Name: "Full Color"})
	assert.Equal(t, Totals{DurationMinutes: 225, MinPrice: 50}, d.Totals())
}
