package config

type Postgres struct {
	DSN          string `mapstructure:"DSN" json:"dsn" yaml:"dsn"`
	MaxOpenConns int    `mapstructure:"MAX_OPEN_CONNS" json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"MAX_IDLE_CONNS" json:"max_idle_conns" yaml:"max_idle_conns"`
}
