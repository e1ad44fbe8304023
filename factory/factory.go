package factory

import (
	"context"
	"event-composer-backend/config"
	"event-composer-backend/draft"
	"event-composer-backend/logger"
	"event-composer-backend/upstream"
	"event-composer-backend/vault"
	"sync"
	"time"

	"github.com/go-redis/redis"
	"github.com/spf13/viper"
)

var st sync.Once
var up sync.Once

type Factory interface {
	Store(ctx context.Context) draft.Store
	Upstream(ctx context.Context) upstream.API
}

type factory struct {
	store draft.Store
	api   upstream.API
}

func NewFactory() Factory {
	return &factory{}
}

func (f *factory) Store(ctx context.Context) draft.Store {
	st.Do(func() {
		if viper.GetString(config.DraftStore) == "redis" {
			client := redis.NewClient(&redis.Options{
				Addr:     viper.GetString(config.RedisAddress),
				Password: viper.GetString(config.RedisPassword),
				DB:       viper.GetInt(config.RedisDB),
			})
			f.store = draft.NewRedisStore(client, viper.GetString(config.DraftKey))
			return
		}

		f.store = draft.NewFileStore(viper.GetString(config.DraftPath))
	})

	return f.store
}

func (f *factory) Upstream(ctx context.Context) upstream.API {
	up.Do(func() {
		var source upstream.CredentialsSource
		if viper.GetString(config.VaultAddress) != "" {
			v, err := vault.New(
				viper.GetString(config.VaultToken),
				viper.GetString(config.VaultUnSealKey),
				viper.GetString(config.VaultAddress),
				viper.GetString(config.VaultCredentialsPath))
			if err != nil {
				logger.Fatalf(ctx, "upstream: error creating vault client: %+v", err)
			}
			source = v
		} else {
			source = upstream.StaticCredentials{
				BearerToken: viper.GetString(config.UpstreamBearerToken),
				TenantID:    viper.GetString(config.UpstreamTenantID),
			}
		}

		f.api = upstream.NewClient(
			viper.GetString(config.UpstreamAddress),
			source,
			time.Duration(viper.GetInt(config.UpstreamTimeout))*time.Second)
	})

	return f.api
}
