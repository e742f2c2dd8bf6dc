package config

type ServiceConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment" validate:"omitempty,oneof=development staging production test"`
	Version     string `yaml:"version"`
}

type LogConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	Format      string `yaml:"format" validate:"omitempty,oneof=json console"`
	Output      string `yaml:"output"`
	FilePath    string `yaml:"file_path" split_words:"true"`
	Development bool   `yaml:"development"`
}

type JWTConfig struct {
	Secret string `yaml:"secret" validate:"required"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint" validate:"required_if=Enabled true"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio" split_words:"true" validate:"min=0,max=1"`
}
