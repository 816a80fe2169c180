package naming

import "fmt"

// Naming functions for environment resources.

func VPC(env string) string {
	return fmt.Sprintf("%s-vpc", env)
}

func InternetGateway(env string) string {
	return fmt.Sprintf("%s-igw", env)
}

func PublicSubnet(env string) string {
	return fmt.Sprintf("%s-public", env)
}

func PrivateSubnet(env string) string {
	return fmt.Sprintf("%s-private", env)
}

func PublicRouteTable(env string) string {
	return fmt.Sprintf("%s-public-rt", env)
}

func Bucket(env string) string {
	return fmt.Sprintf("%s-bucket", env)
}

func DatabaseInstance(env string) string {
	return fmt.Sprintf("%s-db", env)
}

func DatabaseSubnetGroup(env string) string {
	return fmt.Sprintf("%s-db-subnets", env)
}

func DatabaseSecurityGroup(env string) string {
	return fmt.Sprintf("%s-db-sg", env)
}

func ECSCluster(env string) string {
	return fmt.Sprintf("%s-cluster", env)
}

func ECSLogGroup(env string) string {
	return fmt.Sprintf("/ecs/%s", env)
}

// ArchiveFile is the download name of an environment's project archive.
func ArchiveFile(env string) string {
	return fmt.Sprintf("%s.zip", env)
}

// ArchiveKey is the object key an environment's archive is published under.
func ArchiveKey(env string) string {
	return fmt.Sprintf("%s/%s", env, ArchiveFile(env))
}
