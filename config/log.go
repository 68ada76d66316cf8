package config

type Log struct {
	// debug | info | warn | error
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level"`
}
