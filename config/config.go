package config

import (
	"github.com/spf13/viper"
)

const (
	Port = "server.port"

	DraftStore = "draft.store"
	DraftPath  = "draft.path"
	DraftKey   = "draft.key"

	RedisAddress  = "redis.address"
	RedisPassword = "redis.password"
	RedisDB       = "redis.db"

	UpstreamAddress     = "upstream.address"
	UpstreamTimeout     = "upstream.timeout_seconds"
	UpstreamBearerToken = "upstream.bearer_token"
	UpstreamTenantID    = "upstream.tenant_id"

	VaultAddress         = "vault.address"
	VaultToken           = "vault.token"
	VaultUnSealKey       = "vault.unseal_key"
	VaultCredentialsPath = "vault.credentials_path"
)

func init() {
	viper.AutomaticEnv()
	viper.SetDefault(Port, "9100")
	viper.SetDefault(DraftStore, "file")
	viper.SetDefault(DraftPath, "./event-draft.json")
	viper.SetDefault(DraftKey, "event-draft")
	viper.SetDefault(UpstreamTimeout, 30)
}
