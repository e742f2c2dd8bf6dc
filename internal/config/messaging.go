package config

type MessagingConfig struct {
	Driver string      `yaml:"driver" validate:"oneof=none redis amqp"`
	Redis  RedisConfig `yaml:"redis"`
	AMQP   AMQPConfig  `yaml:"amqp"`
}

type RedisConfig struct {
	Addr          string `yaml:"addr"`
	Password      string `yaml:"password"`
	DB            int    `yaml:"db"`
	ChannelPrefix string `yaml:"channel_prefix" split_words:"true"`
}

type AMQPConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}
