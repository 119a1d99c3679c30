package config

import "time"

type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	Algorithm     string `json:"algorithm" yaml:"algorithm"`
	ExpireMinutes int    `json:"expire_minutes" yaml:"expire_minutes"`
}

// Expire 默认 token 有效期
func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}
