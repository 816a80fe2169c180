package config

import "k8s.io/apimachinery/pkg/util/sets"

// MinDatabasePasswordLength is the shortest accepted RDS master password.
const MinDatabasePasswordLength = 8

// Database engines supported for the relational database service.
const (
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
)

// Default listener ports per database engine.
const (
	PostgresPort = 5432
	MySQLPort    = 3306
)

// ValidRegions contains the AWS regions an environment may be placed in.
var ValidRegions = sets.New(
	"us-east-1", "us-east-2",
	"us-west-1", "us-west-2",
	"eu-west-1", "eu-west-2", "eu-west-3",
	"eu-central-1", "eu-central-2",
	"ap-south-1",
	"ap-northeast-1", "ap-northeast-2", "ap-northeast-3",
	"ap-southeast-1", "ap-southeast-2",
	"ap-east-1",
	"sa-east-1",
	"ca-central-1",
)

// ValidEngines contains the supported RDS engines.
var ValidEngines = sets.New(EnginePostgres, EngineMySQL)

// EnginePort returns the default listener port of a database engine, or 0 if
// the engine is unknown.
func EnginePort(engine string) int {
	switch engine {
	case EnginePostgres:
		return PostgresPort
	case EngineMySQL:
		return MySQLPort
	default:
		return 0
	}
}
