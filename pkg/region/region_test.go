package region_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/awsid/pkg/region"
)

var allCodes = []string{
	"af-south-1",
	"ap-east-1",
	"ap-northeast-1",
	"ap-northeast-2",
	"ap-northeast-3",
	"ap-south-1",
	"ap-south-2",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-southeast-3",
	"ap-southeast-4",
	"ca-central-1",
	"ca-west-1",
	"eu-central-1",
	"eu-central-2",
	"eu-north-1",
	"eu-south-1",
	"eu-south-2",
	"eu-west-1",
	"eu-west-2",
	"eu-west-3",
	"il-central-1",
	"me-central-1",
	"me-south-1",
	"sa-east-1",
	"us-east-1",
	"us-east-2",
	"us-west-1",
	"us-west-2",
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("every known code round-trips", func(t *testing.T) {
		t.Parallel()

		require.Len(t, allCodes, 29)
		for _, code := range allCodes {
			r, err := region.Parse(code)
			require.NoError(t, err, "parse %q", code)
			assert.Equal(t, code, r.String())
			assert.True(t, r.IsValid())
		}
	})

	t.Run("specific codes map to constants", func(t *testing.T) {
		t.Parallel()

		r, err := region.Parse("eu-central-1")
		require.NoError(t, err)
		assert.Equal(t, region.EUCentral1, r)

		r, err = region.Parse("us-east-1")
		require.NoError(t, err)
		assert.Equal(t, region.USEast1, r)
	})

	t.Run("unknown codes are rejected", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"mars-central-1",
			"EU-CENTRAL-1",
			"eu-central-1 ",
			"unknown",
			"",
		}
		for _, input := range tests {
			r, err := region.Parse(input)
			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, region.ErrUnknownRegion)
			assert.Equal(t, region.Unknown, r)
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, region.APSoutheast2, region.MustParse("ap-southeast-2"))
	assert.Panics(t, func() { region.MustParse("mars-central-1") })
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "us-west-2", region.USWest2.String())
	assert.Equal(t, "eu-central-1", region.EUCentral1.String())
	assert.Equal(t, "unknown", region.Unknown.String())
	assert.Equal(t, "unknown", region.Region(200).String())
}

func TestDescription(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Europe (Frankfurt)", region.EUCentral1.Description())
	assert.Equal(t, "US East (N. Virginia)", region.USEast1.Description())
	assert.Equal(t, "Unknown", region.Unknown.Description())
}

func TestEquality(t *testing.T) {
	t.Parallel()

	a := region.MustParse("us-east-1")
	b := region.MustParse("us-east-1")
	c := region.MustParse("eu-west-2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// Tag equality must agree with textual equality.
	assert.Equal(t, a.String() == b.String(), a == b)
	assert.Equal(t, a.String() == c.String(), a == c)
}

// Tag order is declared to match the lexicographic order of the codes, so
// sorting by tag and sorting by text agree.
func TestOrderingMatchesText(t *testing.T) {
	t.Parallel()

	all := region.All()
	require.Len(t, all, 29)

	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool { return all[i] < all[j] }))
	codes := make([]string, len(all))
	for i, r := range all {
		codes[i] = r.String()
	}
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Equal(t, allCodes, codes)
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.False(t, region.Unknown.IsValid())
	assert.False(t, region.Region(255).IsValid())
	assert.True(t, region.AFSouth1.IsValid())
	assert.True(t, region.USWest2.IsValid())
}
