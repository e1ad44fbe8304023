package vault

import (
	"context"
	"event-composer-backend/upstream"
	"fmt"

	"github.com/hashicorp/vault/api"
)

// Vault holds the upstream API credentials (bearer token and tenant id) so
// they never live in the composer's own config file.
type Vault struct {
	CredentialsPath string
	*api.Client
}

func New(token, unsealKey, address, credentialsPath string) (*Vault, error) {
	config := &api.Config{
		Address: address,
	}

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("new: error initializing vault: %w", err)
	}

	client.SetToken(token)

	s := client.Sys()
	status, err := s.SealStatus()
	if err != nil {
		return nil, fmt.Errorf("new: error getting seal status: %w", err)
	}

	if status.Sealed {
		unsealResponse, err := s.Unseal(unsealKey)
		if err != nil {
			return nil, fmt.Errorf("new: error getting unseal response: %w", err)
		}
		if unsealResponse.Sealed {
			return nil, fmt.Errorf("new: vault unseal unsuccesfull")
		}
	}

	err = createIfNotExists(client, credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("new: unable to mount credentials path: %w", err)
	}

	return &Vault{CredentialsPath: credentialsPath, Client: client}, nil
}

// Credentials implements upstream.CredentialsSource.
func (v *Vault) Credentials(ctx context.Context) (*upstream.Credentials, error) {
	secret, err := v.Logical().Read(fmt.Sprintf("%s/upstream", v.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("credentials: error reading upstream credentials: %w", err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("credentials: no upstream credentials stored")
	}

	token, _ := secret.Data["bearer_token"].(string)
	tenant, _ := secret.Data["tenant_id"].(string)
	if token == "" {
		return nil, fmt.Errorf("credentials: bearer_token missing from vault")
	}

	return &upstream.Credentials{BearerToken: token, TenantID: tenant}, nil
}

func createIfNotExists(client *api.Client, path string) error {
	mounts, err := client.Sys().ListMounts()
	if err != nil {
		return fmt.Errorf("createIfNotExists: unable to list mounts: %w", err)
	}

	if _, ok := mounts[path+"/"]; !ok {
		err = client.Sys().Mount(path, &api.MountInput{Type: "kv"})
		if err != nil {
			return fmt.Errorf("createIfNotExists: unable to create path: %w", err)
		}
	}

	return nil
}
