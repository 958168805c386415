package region

import "fmt"

// Region is one of the known AWS regions, represented as a single byte.
// The zero value is Unknown. Constants are declared in the lexicographic
// order of their codes, so ordering by tag matches ordering by text.
type Region uint8

const (
	Unknown Region = iota
	AFSouth1
	APEast1
	APNortheast1
	APNortheast2
	APNortheast3
	APSouth1
	APSouth2
	APSoutheast1
	APSoutheast2
	APSoutheast3
	APSoutheast4
	CACentral1
	CAWest1
	EUCentral1
	EUCentral2
	EUNorth1
	EUSouth1
	EUSouth2
	EUWest1
	EUWest2
	EUWest3
	ILCentral1
	MECentral1
	MESouth1
	SAEast1
	USEast1
	USEast2
	USWest1
	USWest2
)

var regionCodes = [...]string{
	Unknown:      "unknown",
	AFSouth1:     "af-south-1",
	APEast1:      "ap-east-1",
	APNortheast1: "ap-northeast-1",
	APNortheast2: "ap-northeast-2",
	APNortheast3: "ap-northeast-3",
	APSouth1:     "ap-south-1",
	APSouth2:     "ap-south-2",
	APSoutheast1: "ap-southeast-1",
	APSoutheast2: "ap-southeast-2",
	APSoutheast3: "ap-southeast-3",
	APSoutheast4: "ap-southeast-4",
	CACentral1:   "ca-central-1",
	CAWest1:      "ca-west-1",
	EUCentral1:   "eu-central-1",
	EUCentral2:   "eu-central-2",
	EUNorth1:     "eu-north-1",
	EUSouth1:     "eu-south-1",
	EUSouth2:     "eu-south-2",
	EUWest1:      "eu-west-1",
	EUWest2:      "eu-west-2",
	EUWest3:      "eu-west-3",
	ILCentral1:   "il-central-1",
	MECentral1:   "me-central-1",
	MESouth1:     "me-south-1",
	SAEast1:      "sa-east-1",
	USEast1:      "us-east-1",
	USEast2:      "us-east-2",
	USWest1:      "us-west-1",
	USWest2:      "us-west-2",
}

var regionDescriptions = [...]string{
	Unknown:      "Unknown",
	AFSouth1:     "Africa (Cape Town)",
	APEast1:      "Asia Pacific (Hong Kong)",
	APNortheast1: "Asia Pacific (Tokyo)",
	APNortheast2: "Asia Pacific (Seoul)",
	APNortheast3: "Asia Pacific (Osaka)",
	APSouth1:     "Asia Pacific (Mumbai)",
	APSouth2:     "Asia Pacific (Hyderabad)",
	APSoutheast1: "Asia Pacific (Singapore)",
	APSoutheast2: "Asia Pacific (Sydney)",
	APSoutheast3: "Asia Pacific (Jakarta)",
	APSoutheast4: "Asia Pacific (Melbourne)",
	CACentral1:   "Canada (Central)",
	CAWest1:      "Canada West (Calgary)",
	EUCentral1:   "Europe (Frankfurt)",
	EUCentral2:   "Europe (Zurich)",
	EUNorth1:     "Europe (Stockholm)",
	EUSouth1:     "Europe (Milan)",
	EUSouth2:     "Europe (Spain)",
	EUWest1:      "Europe (Ireland)",
	EUWest2:      "Europe (London)",
	EUWest3:      "Europe (Paris)",
	ILCentral1:   "Israel (Tel Aviv)",
	MECentral1:   "Middle East (UAE)",
	MESouth1:     "Middle East (Bahrain)",
	SAEast1:      "South America (Sao Paulo)",
	USEast1:      "US East (N. Virginia)",
	USEast2:      "US East (Ohio)",
	USWest1:      "US West (N. California)",
	USWest2:      "US West (Oregon)",
}

var regionsByCode = make(map[string]Region, len(regionCodes)-1)

func init() {
	for r, code := range regionCodes {
		if Region(r) == Unknown {
			continue
		}
		regionsByCode[code] = Region(r)
	}
}

// Parse returns the Region for an exact region code such as
// "eu-central-1". Anything else, including "unknown", fails with an error
// matching ErrUnknownRegion.
func Parse(s string) (Region, error) {
	if r, ok := regionsByCode[s]; ok {
		return r, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// MustParse is like Parse but panics on unknown codes. Intended for
// constants and test fixtures.
func MustParse(s string) Region {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the canonical region code, or "unknown" for the zero
// value and any out-of-range tag.
func (r Region) String() string {
	if !r.IsValid() {
		return regionCodes[Unknown]
	}
	return regionCodes[r]
}

// Description returns the human-readable location of the region, e.g.
// "Europe (Frankfurt)" for EUCentral1.
func (r Region) Description() string {
	if !r.IsValid() {
		return regionDescriptions[Unknown]
	}
	return regionDescriptions[r]
}

// IsValid reports whether r is one of the known regions.
func (r Region) IsValid() bool {
	return r > Unknown && int(r) < len(regionCodes)
}

// All returns every known region in the lexicographic order of their
// codes. The returned slice is freshly allocated.
func All() []Region {
	all := make([]Region, 0, len(regionCodes)-1)
	for r := range regionCodes {
		if Region(r) != Unknown {
			all = append(all, Region(r))
		}
	}
	return all
}
