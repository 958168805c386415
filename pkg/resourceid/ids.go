package resourceid

// The table of concrete resource types. Each entry is a zero-size prefix
// marker plus a type alias; all behavior lives on ID. Adding a resource
// type means adding one marker and one alias here, nothing else.

// NetworkACL is the prefix marker for network ACL (access control list) IDs ("acl-").
type NetworkACL struct{}

func (NetworkACL) prefix() string { return "acl-" }

// NetworkACLID is a network ACL identifier, e.g. "acl-1234abcd".
type NetworkACLID = ID[NetworkACL]

// AMI is the prefix marker for AMI (Amazon Machine Image) IDs ("ami-").
type AMI struct{}

func (AMI) prefix() string { return "ami-" }

// AMIID is an AMI identifier, e.g. "ami-1234abcd".
type AMIID = ID[AMI]

// CustomerGateway is the prefix marker for customer gateway IDs ("cgw-").
type CustomerGateway struct{}

func (CustomerGateway) prefix() string { return "cgw-" }

// CustomerGatewayID is a customer gateway identifier.
type CustomerGatewayID = ID[CustomerGateway]

// ElasticIP is the prefix marker for Elastic IP allocation IDs ("eipalloc-").
type ElasticIP struct{}

func (ElasticIP) prefix() string { return "eipalloc-" }

// ElasticIPID is an Elastic IP allocation identifier.
type ElasticIPID = ID[ElasticIP]

// FileSystem is the prefix marker for EFS (Elastic File System) IDs ("fs-").
type FileSystem struct{}

func (FileSystem) prefix() string { return "fs-" }

// FileSystemID is an EFS file system identifier.
type FileSystemID = ID[FileSystem]

// MountTarget is the prefix marker for EFS mount target IDs ("fsmt-").
type MountTarget struct{}

func (MountTarget) prefix() string { return "fsmt-" }

// MountTargetID is an EFS mount target identifier.
type MountTargetID = ID[MountTarget]

// Stack is the prefix marker for CloudFormation stack IDs ("stack-").
type Stack struct{}

func (Stack) prefix() string { return "stack-" }

// StackID is a CloudFormation stack identifier.
type StackID = ID[Stack]

// Environment is the prefix marker for Elastic Beanstalk environment IDs ("e-").
type Environment struct{}

func (Environment) prefix() string { return "e-" }

// EnvironmentID is an Elastic Beanstalk environment identifier.
type EnvironmentID = ID[Environment]

// Instance is the prefix marker for EC2 instance IDs ("i-").
type Instance struct{}

func (Instance) prefix() string { return "i-" }

// InstanceID is an EC2 instance identifier, e.g. "i-1234567890abcdef0".
type InstanceID = ID[Instance]

// InternetGateway is the prefix marker for internet gateway IDs ("igw-").
type InternetGateway struct{}

func (InternetGateway) prefix() string { return "igw-" }

// InternetGatewayID is an internet gateway identifier.
type InternetGatewayID = ID[InternetGateway]

// KeyPair is the prefix marker for key pair IDs ("key-").
type KeyPair struct{}

func (KeyPair) prefix() string { return "key-" }

// KeyPairID is a key pair identifier.
type KeyPairID = ID[KeyPair]

// LoadBalancer is the prefix marker for Elastic Load Balancer IDs ("elbv2-").
type LoadBalancer struct{}

func (LoadBalancer) prefix() string { return "elbv2-" }

// LoadBalancerID is an Elastic Load Balancer identifier.
type LoadBalancerID = ID[LoadBalancer]

// NATGateway is the prefix marker for NAT gateway IDs ("nat-").
type NATGateway struct{}

func (NATGateway) prefix() string { return "nat-" }

// NATGatewayID is a NAT gateway identifier.
type NATGatewayID = ID[NATGateway]

// NetworkInterface is the prefix marker for elastic network interface IDs ("eni-").
type NetworkInterface struct{}

func (NetworkInterface) prefix() string { return "eni-" }

// NetworkInterfaceID is a network interface identifier.
type NetworkInterfaceID = ID[NetworkInterface]

// PlacementGroup is the prefix marker for placement group IDs ("pg-").
type PlacementGroup struct{}

func (PlacementGroup) prefix() string { return "pg-" }

// PlacementGroupID is a placement group identifier.
type PlacementGroupID = ID[PlacementGroup]

// DBInstance is the prefix marker for RDS instance IDs ("db-").
type DBInstance struct{}

func (DBInstance) prefix() string { return "db-" }

// DBInstanceID is an RDS instance identifier.
type DBInstanceID = ID[DBInstance]

// RedshiftCluster is the prefix marker for Redshift cluster IDs ("redshift-").
type RedshiftCluster struct{}

func (RedshiftCluster) prefix() string { return "redshift-" }

// RedshiftClusterID is a Redshift cluster identifier.
type RedshiftClusterID = ID[RedshiftCluster]

// RouteTable is the prefix marker for route table IDs ("rtb-").
type RouteTable struct{}

func (RouteTable) prefix() string { return "rtb-" }

// RouteTableID is a route table identifier.
type RouteTableID = ID[RouteTable]

// SecurityGroup is the prefix marker for security group IDs ("sg-").
type SecurityGroup struct{}

func (SecurityGroup) prefix() string { return "sg-" }

// SecurityGroupID is a security group identifier, e.g. "sg-1234abcd".
type SecurityGroupID = ID[SecurityGroup]

// Snapshot is the prefix marker for EBS snapshot IDs ("snap-").
type Snapshot struct{}

func (Snapshot) prefix() string { return "snap-" }

// SnapshotID is an EBS snapshot identifier.
type SnapshotID = ID[Snapshot]

// Subnet is the prefix marker for VPC subnet IDs ("subnet-").
type Subnet struct{}

func (Subnet) prefix() string { return "subnet-" }

// SubnetID is a VPC subnet identifier.
type SubnetID = ID[Subnet]

// TargetGroup is the prefix marker for target group IDs ("tg-").
type TargetGroup struct{}

func (TargetGroup) prefix() string { return "tg-" }

// TargetGroupID is a target group identifier.
type TargetGroupID = ID[TargetGroup]

// TransitGatewayAttachment is the prefix marker for transit gateway
// attachment IDs ("tgw-attach-").
type TransitGatewayAttachment struct{}

func (TransitGatewayAttachment) prefix() string { return "tgw-attach-" }

// TransitGatewayAttachmentID is a transit gateway attachment identifier.
type TransitGatewayAttachmentID = ID[TransitGatewayAttachment]

// TransitGateway is the prefix marker for transit gateway IDs ("tgw-").
type TransitGateway struct{}

func (TransitGateway) prefix() string { return "tgw-" }

// TransitGatewayID is a transit gateway identifier.
type TransitGatewayID = ID[TransitGateway]

// Volume is the prefix marker for EBS volume IDs ("vol-").
type Volume struct{}

func (Volume) prefix() string { return "vol-" }

// VolumeID is an EBS volume identifier.
type VolumeID = ID[Volume]

// VPC is the prefix marker for VPC (Virtual Private Cloud) IDs ("vpc-").
type VPC struct{}

func (VPC) prefix() string { return "vpc-" }

// VPCID is a VPC identifier, e.g. "vpc-1234abcd".
type VPCID = ID[VPC]

// VPNConnection is the prefix marker for VPN connection IDs ("vpn-").
type VPNConnection struct{}

func (VPNConnection) prefix() string { return "vpn-" }

// VPNConnectionID is a VPN connection identifier.
type VPNConnectionID = ID[VPNConnection]

// VPNGateway is the prefix marker for virtual private gateway IDs ("vgw-").
type VPNGateway struct{}

func (VPNGateway) prefix() string { return "vgw-" }

// VPNGatewayID is a virtual private gateway identifier.
type VPNGatewayID = ID[VPNGateway]
