package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsWithoutSpec(t *testing.T) {
	view, err := Default.Options(CategoryMacBook, `MacBook Pro 16"`, "", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Space Black", "Silver"}, view.Colors)
	assert.Len(t, view.Specs, 4)

	// Option families depend on the chosen specification, so none resolve.
	assert.Nil(t, view.Memory)
	assert.Nil(t, view.Storage)
	assert.Nil(t, view.Charger)
	assert.False(t, view.NanoTextureAvailable)
}

func TestOptionsUnknownSpec(t *testing.T) {
	_, err := Default.Options(CategoryMacBook, `MacBook Pro 16"`, "M5 Ultra", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLaptopOptionGating(t *testing.T) {
	view, err := Default.Options(CategoryMacBook, `MacBook Pro 16"`, "M4 Max 14-Core CPU 32-Core GPU 36GB Unified Memory", "")
	require.NoError(t, err)

	// minStorage is 1TB: every returned tier parses to >= 1024GB.
	assert.Equal(t, []string{"1TB", "2TB", "4TB", "8TB"}, view.Storage)
	// minMemory is 24GB; the family starts at 36GB so everything passes.
	assert.Equal(t, []string{"36GB", "48GB", "64GB", "128GB"}, view.Memory)
	assert.Equal(t, []string{"70W", "96W"}, view.Charger)
	assert.True(t, view.NanoTextureAvailable)
	require.NotNil(t, view.NanoTexturePrice)
	assert.Equal(t, 150, *view.NanoTexturePrice)
}

func TestOmittedFamilyVersusEmpty(t *testing.T) {
	// The second Mac mini spec has no charger family at all; the result must
	// omit it (nil) rather than report an empty eligible set.
	view, err := Default.Options(CategoryMacBook, "Mac mini", "M4 8-Core CPU 10-Core GPU 24GB Unified Memory", "")
	require.NoError(t, err)

	assert.Nil(t, view.Charger)
	assert.NotNil(t, view.Storage)
}

func TestSingleEligibleValueStillExposed(t *testing.T) {
	// The second Mac mini spec offers exactly one memory size; it must still
	// come back as the one eligible option.
	view, err := Default.Options(CategoryMacBook, "Mac mini", "M4 8-Core CPU 10-Core GPU 24GB Unified Memory", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"24GB"}, view.Memory)
}

func TestNanoTextureGatedByStorageTier(t *testing.T) {
	const spec = "11-inch iPad Pro"

	// 256GB selected: below the 1TB minimum, so no nano-texture.
	view, err := Default.Options(CategoryIPad, "iPad Pro", spec, "256GB")
	require.NoError(t, err)
	assert.False(t, view.NanoTextureAvailable)

	// 1TB selected: eligible.
	view, err = Default.Options(CategoryIPad, "iPad Pro", spec, "1TB")
	require.NoError(t, err)
	assert.True(t, view.NanoTextureAvailable)

	// Nothing selected yet: some tier could satisfy the constraint, so the
	// add-on is shown as available.
	view, err = Default.Options(CategoryIPad, "iPad Pro", spec, "")
	require.NoError(t, err)
	assert.True(t, view.NanoTextureAvailable)
}

func TestWatchColorsComeFromSpecification(t *testing.T) {
	view, err := Default.Options(CategoryWatch, "Apple Watch Series 10", "Aluminium Case", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Silver", "Rose Gold", "Jet Black"}, view.Colors)

	view, err = Default.Options(CategoryWatch, "Apple Watch Series 10", "Titanium Case", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Natural", "Slate", "Gold"}, view.Colors)

	// The SE defines no per-spec colors, so the model-level set applies.
	view, err = Default.Options(CategoryWatch, "Apple Watch SE", "default", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Midnight", "Starlight", "Silver"}, view.Colors)
}

func TestWatchBandsPassThroughUnfiltered(t *testing.T) {
	view, err := Default.Options(CategoryWatch, "Apple Watch Series 10", "Aluminium Case", "")
	require.NoError(t, err)

	require.Len(t, view.Bands, 3)
	assert.Equal(t, "Rubber", view.Bands[0].Material)
	assert.Equal(t, "Textile", view.Bands[1].Material)
	assert.Equal(t, "Stainless Steel", view.Bands[2].Material)
}

// TestStorageGatingHoldsAcrossCatalog walks every specification in the
// catalog and checks that no resolved storage tier sits below the declared
// minimum.
func TestStorageGatingHoldsAcrossCatalog(t *testing.T) {
	for _, cat := range Categories() {
		entries, err := Default.ListModels(cat)
		require.NoError(t, err)

		for _, entry := range entries {
			for _, spec := range entry.Model.Specs {
				if spec.Constraints.MinStorage == "" {
					continue
				}
				minGB, err := parseStorageGB(spec.Constraints.MinStorage)
				require.NoError(t, err)

				view, err := Default.Options(cat, entry.Key, spec.Name, "")
				require.NoError(t, err)

				for _, tier := range view.Storage {
					assert.GreaterOrEqual(t, storageGBOrZero(tier), minGB,
						"%s / %s / %s offers %s below minimum %s",
						cat, entry.Key, spec.Name, tier, spec.Constraints.MinStorage)
				}
			}
		}
	}
}
