package config

type ServerConfig struct {
	HTTP HTTPConfig `yaml:"http"`
	GRPC GRPCConfig `yaml:"grpc"`
}

type HTTPConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port" validate:"required,min=1,max=65535"`
	CORSOrigins []string `yaml:"cors_origins" split_words:"true"`
}

type GRPCConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"required,min=1,max=65535"`
}
