// Package resourceid provides strongly typed, zero-allocation AWS resource
// identifiers of the general "prefix-uniquesuffix" format, such as
// "vpc-1234abcd" or "i-1234567890abcdef0".
//
// One generic engine (ID, parameterized by a prefix marker) carries all
// parsing, validation, formatting, ordering, and encoding logic; the
// concrete resource types in ids.go are thin table entries over it. A
// valid identifier consists of the resource prefix followed by an 8 or 17
// character suffix of lowercase hex digits — the two suffix lengths AWS
// has issued over time (8 characters before January 2016, 17 after; see
// https://docs.aws.amazon.com/AWSEC2/latest/UserGuide/resource-ids.html).
// Every type accepts both lengths.
//
// # Representation
//
// An ID stores its suffix inline in a fixed 17-byte array plus a one-byte
// length, 18 bytes total with no pointers. That footprint is a documented
// guarantee: identifiers pack densely into arrays, compare with ==, key
// maps, and cross goroutines freely since they are immutable after
// construction. Parse performs no heap allocation; String is the only
// allocating operation.
//
// # Usage
//
//	import "github.com/dmitrymomot/awsid/pkg/resourceid"
//
//	vpc, err := resourceid.Parse[resourceid.VPC]("vpc-1234abcd")
//	if err != nil {
//		// errors.Is(err, resourceid.ErrPrefixMismatch) etc.
//	}
//	fmt.Println(vpc.String()) // "vpc-1234abcd"
//	fmt.Println(vpc.Suffix()) // "1234abcd"
//
// Validation runs length, prefix, and suffix-charset checks in that fixed
// order and reports the first violation as a *ParseError wrapping one of
// ErrLengthMismatch, ErrPrefixMismatch, or ErrInvalidSuffixChar. Inputs
// already known to be valid (for example re-hydrated from a trusted
// store) can skip validation with FromTrusted; misuse of that path is the
// caller's contract violation, not a detectable error.
//
// # Resource types
//
//	NetworkACLID                acl-         network ACL
//	AMIID                       ami-         Amazon Machine Image
//	CustomerGatewayID           cgw-         customer gateway
//	ElasticIPID                 eipalloc-    Elastic IP allocation
//	FileSystemID                fs-          EFS file system
//	MountTargetID               fsmt-        EFS mount target
//	StackID                     stack-       CloudFormation stack
//	EnvironmentID               e-           Elastic Beanstalk environment
//	InstanceID                  i-           EC2 instance
//	InternetGatewayID           igw-         internet gateway
//	KeyPairID                   key-         key pair
//	LoadBalancerID              elbv2-       Elastic Load Balancer
//	NATGatewayID                nat-         NAT gateway
//	NetworkInterfaceID          eni-         network interface
//	PlacementGroupID            pg-          placement group
//	DBInstanceID                db-          RDS instance
//	RedshiftClusterID           redshift-    Redshift cluster
//	RouteTableID                rtb-         route table
//	SecurityGroupID             sg-          security group
//	SnapshotID                  snap-        EBS snapshot
//	SubnetID                    subnet-      VPC subnet
//	TargetGroupID               tg-          target group
//	TransitGatewayAttachmentID  tgw-attach-  transit gateway attachment
//	TransitGatewayID            tgw-         transit gateway
//	VolumeID                    vol-         EBS volume
//	VPCID                       vpc-         VPC
//	VPNConnectionID             vpn-         VPN connection
//	VPNGatewayID                vgw-         virtual private gateway
//
// # Interchange
//
// Identifiers serialize as plain strings everywhere: JSON and any other
// text codec via encoding.TextMarshaler/TextUnmarshaler, Postgres and
// other SQL stores via driver.Valuer/sql.Scanner (the zero value maps to
// NULL), MongoDB via bson.ValueMarshaler/ValueUnmarshaler, and YAML via
// yaml.Marshaler/Unmarshaler. Decoding always validates, so a corrupt
// stored value fails with the usual parse errors instead of leaking into
// the program.
//
// The package performs shape validation only. It does not check that a
// resource exists, call any AWS API, or parse ARNs.
package resourceid
