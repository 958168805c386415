// Package region provides a compact enumeration of AWS region codes.
//
// A Region is a single byte mapping to one of the 29 known region codes
// ("af-south-1" through "us-west-2"). Construction is by exact string
// lookup, so any valid Region round-trips losslessly to its canonical
// code; the zero value Unknown matches no code and refuses to serialize.
//
// # Usage
//
//	import "github.com/dmitrymomot/awsid/pkg/region"
//
//	r, err := region.Parse("eu-central-1")
//	if err != nil {
//		// errors.Is(err, region.ErrUnknownRegion)
//	}
//	fmt.Println(r.String())      // "eu-central-1"
//	fmt.Println(r.Description()) // "Europe (Frankfurt)"
//
// Region constants are declared in the lexicographic order of their
// codes, so comparing tags with < agrees with comparing the codes as
// strings. Like the resource identifier types, regions serialize as plain
// strings for JSON (via encoding.TextMarshaler), SQL, BSON, and YAML, and
// deserialization always validates against the known set.
//
// The known set is a snapshot of public AWS regions; it does not track
// newly launched regions automatically.
package region
