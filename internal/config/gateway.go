package config

const (
	MidtransSandbox    = "sandbox"
	MidtransProduction = "production"
)

type MidtransConfig struct {
	ServerKey       string `yaml:"server_key" split_words:"true" validate:"required"`
	ClientKey       string `yaml:"client_key" split_words:"true"`
	Environment     string `yaml:"environment" validate:"oneof=sandbox production"`
	OrderPrefix     string `yaml:"order_prefix" split_words:"true" validate:"alphanum"`
	VerifySignature bool   `yaml:"verify_signature" split_words:"true"`
}

type ReconcileConfig struct {
	// TransitionPolicy is monotonic or overwrite.
	TransitionPolicy string `yaml:"transition_policy" split_words:"true" validate:"oneof=monotonic overwrite"`
	ReplayBatch      int    `yaml:"replay_batch" split_words:"true" validate:"min=1"`
	MaxAttempts      int    `yaml:"max_attempts" split_words:"true" validate:"min=1"`
}
