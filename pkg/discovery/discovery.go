// Package discovery registers the API instance in etcd so co-deployed
// tooling can find it. Registration is best-effort: the server runs fine
// without etcd.
package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/example/homeli/pkg/config"
	clientv3 "go.etcd.io/etcd/client/v3"
)

const leaseTTL = 30 // seconds

type Registry struct {
	client *clientv3.Client
	config *config.EtcdConfig
}

type ServiceInstance struct {
	Name string
	Host string
	Port int
}

func (i *ServiceInstance) Addr() string {
	return fmt.Sprintf("%s:%d", i.Host, i.Port)
}

func NewRegistry(cfg *config.EtcdConfig) (*Registry, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: cfg.DialTimeout * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to etcd: %w", err)
	}

	return &Registry{client: cli, config: cfg}, nil
}

// Register writes the instance under a leased key and keeps the lease
// alive for the lifetime of the process.
func (r *Registry) Register(ctx context.Context, instance *ServiceInstance) error {
	key := r.key(instance)

	lease, err := r.client.Grant(ctx, leaseTTL)
	if err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}

	if _, err := r.client.Put(ctx, key, instance.Addr(), clientv3.WithLease(lease.ID)); err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	ch, err := r.client.KeepAlive(ctx, lease.ID)
	if err != nil {
		return fmt.Errorf("failed to keep alive: %w", err)
	}

	go func() {
		for range ch {
		}
	}()

	return nil
}

func (r *Registry) Deregister(ctx context.Context, instance *ServiceInstance) error {
	if _, err := r.client.Delete(ctx, r.key(instance)); err != nil {
		return fmt.Errorf("failed to deregister service: %w", err)
	}
	return nil
}

func (r *Registry) Close() error {
	return r.client.Close()
}

func (r *Registry) key(instance *ServiceInstance) string {
	return fmt.Sprintf("%s%s/%s", r.config.Prefix, instance.Name, instance.Addr())
}
