package bootstrap

import (
	"agendapay/internal/infra/gateway"
	"agendapay/internal/infra/gateway/mercadopago"
	"agendapay/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.GatewayConfig) *mercadopago.Client {
			return mercadopago.NewClient(cfg)
		},
		func(client *mercadopago.Client) gateway.OAuthClient { return client },
		func(client *mercadopago.Client) *gateway.Registry {
			return gateway.NewRegistry(client)
		},
		// The active provider is selected by name so alternative
		// gateways can be registered without touching call sites.
		func(registry *gateway.Registry, cfg config.GatewayConfig) (gateway.Provider, error) {
			return registry.Get(cfg.Provider)
		},
	),
)
