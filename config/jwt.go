package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// AccessExpire access token 有效期（秒）
	AccessExpire int64 `json:"access_expire" yaml:"access_expire"`
	// RefreshExpire refresh token 有效期（秒）
	RefreshExpire int64 `json:"refresh_expire" yaml:"refresh_expire"`
}
