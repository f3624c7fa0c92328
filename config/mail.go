package config

// Mail 邮件配置，发送失败只记日志不影响主流程
type Mail struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	// BaseURL 验证链接的站点地址
	BaseURL string `json:"base_url" yaml:"base_url"`
}
