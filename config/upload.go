package config

// Upload 上传配置，Driver 为 local 时文件落在 StaticRoot 下
type Upload struct {
	Driver     string `json:"driver" yaml:"driver"` // local / oss
	StaticRoot string `json:"static_root" yaml:"static_root"`
	// MaxSize 单个文件大小上限（字节）
	MaxSize int64 `json:"max_size" yaml:"max_size"`
}

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
