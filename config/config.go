package config

type Configuration struct {
	App         App             `mapstructure:"APP" json:"app" yaml:"app"`
	Auth        Auth            `mapstructure:"AUTH" json:"auth" yaml:"auth"`
	Database    Database        `mapstructure:"DATABASE" json:"database" yaml:"database"`
	MongoDB     MongoDB         `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Postgres    Postgres        `mapstructure:"POSTGRES" json:"postgres" yaml:"postgres"`
	Redis       Redis           `mapstructure:"REDIS" json:"redis" yaml:"redis"`
	Log         Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Storage     Storage         `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	Cron        Cron            `mapstructure:"CRON" json:"cron" yaml:"cron"`
	Idempotency Idempotency     `mapstructure:"IDEMPOTENCY" json:"idempotency" yaml:"idempotency"`
	Telemetry   TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd     Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}
