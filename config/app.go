package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// TokenSalt 邮箱验证 token 的加盐
	TokenSalt string `json:"token_salt" yaml:"token_salt"`
}
