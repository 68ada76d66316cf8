package config

import "time"

type Auth struct {
	// 簽發 JWT 用的密鑰，未設定時服務不啟動
	JWTSecret string        `mapstructure:"JWT_SECRET" json:"jwt_secret" yaml:"jwt_secret"`
	Issuer    string        `mapstructure:"ISSUER" json:"issuer" yaml:"issuer"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL" json:"token_ttl" yaml:"token_ttl"`
	// 登入失敗次數上限（每個 email 每個視窗）
	LoginMaxAttempts int64         `mapstructure:"LOGIN_MAX_ATTEMPTS" json:"login_max_attempts" yaml:"login_max_attempts"`
	LoginWindow      time.Duration `mapstructure:"LOGIN_WINDOW" json:"login_window" yaml:"login_window"`
}

func (a Auth) TTL() time.Duration {
	if a.TokenTTL <= 0 {
		return 12 * time.Hour
	}
	return a.TokenTTL
}

func (a Auth) MaxAttempts() int64 {
	if a.LoginMaxAttempts <= 0 {
		return 5
	}
	return a.LoginMaxAttempts
}

func (a Auth) Window() time.Duration {
	if a.LoginWindow <= 0 {
		return 15 * time.Minute
	}
	return a.LoginWindow
}
