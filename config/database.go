package config

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Database struct {
	// mongo | postgres，預設 mongo
	Driver string `mapstructure:"DRIVER" json:"driver" yaml:"driver"`
}
