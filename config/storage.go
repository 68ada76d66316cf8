package config

import "time"

// Storage S3 相容的物件儲存，用於銀行資料與版型圖片
type Storage struct {
	Enabled      bool          `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Bucket       string        `mapstructure:"BUCKET" json:"bucket" yaml:"bucket"`
	Region       string        `mapstructure:"REGION" json:"region" yaml:"region"`
	Endpoint     string        `mapstructure:"ENDPOINT" json:"endpoint" yaml:"endpoint"`
	AccessKey    string        `mapstructure:"ACCESS_KEY" json:"access_key" yaml:"access_key"`
	SecretKey    string        `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	UsePathStyle bool          `mapstructure:"USE_PATH_STYLE" json:"use_path_style" yaml:"use_path_style"`
	PresignTTL   time.Duration `mapstructure:"PRESIGN_TTL" json:"presign_ttl" yaml:"presign_ttl"`
}
