package config

import "time"

type Cron struct {
	// 預設 "0 0 2 * * *"（含秒），off 停用
	SalaryRecalcSpec string `mapstructure:"SALARY_RECALC_SPEC" json:"salary_recalc_spec" yaml:"salary_recalc_spec"`
}

type Idempotency struct {
	TTL time.Duration `mapstructure:"TTL" json:"ttl" yaml:"ttl"`
}
