package config

import (
	"net/http"

	"seyren-stride/application/services"
	"seyren-stride/application/usecases"
	"seyren-stride/domain/interfaces"
	"seyren-stride/infrastructure/logger"
	"seyren-stride/infrastructure/metrics"
	"seyren-stride/infrastructure/notifier"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// Infrastructure
	Logger     interfaces.Logger
	HTTPClient *http.Client
	Exporter   *metrics.Exporter

	// Channels
	StrideNotifier *notifier.StrideNotifier
	Credentials    interfaces.CredentialProvider
	Resolver       interfaces.ConversationResolver

	// Services
	NotificationRouter interfaces.NotificationRouter

	// Use Cases
	NotifyCheckUseCase interfaces.NotifyCheckUseCase
}

// NewContainer creates a new dependency injection container
func NewContainer(config *Config) (*Container, error) {
	container := &Container{
		Config: config,
	}

	// Initialize logger
	container.Logger = logger.NewLogrusLogger(config.LogLevel, config.LogFormat)

	// One client shared by token, listing and post requests
	container.HTTPClient = &http.Client{Timeout: config.HTTPTimeout}

	container.Exporter = metrics.NewExporter(container.Logger)

	container.initChannels()
	container.initServices()
	container.initUseCases()

	return container, nil
}

// initChannels initializes the notification channels
func (c *Container) initChannels() {
	strideConfig := c.Config.NotifierConfig()

	c.Credentials = notifier.NewStrideCredentialProvider(
		strideConfig.AuthURL,
		strideConfig.Audience,
		strideConfig.ClientID,
		strideConfig.ClientSecret,
		c.HTTPClient,
		c.Logger,
	)
	c.Resolver = notifier.NewStrideConversationResolver(strideConfig.BaseURL, c.HTTPClient, c.Logger)

	c.StrideNotifier = notifier.NewStrideNotifier(
		strideConfig,
		c.Credentials,
		c.Resolver,
		notifier.NewStrideMessageComposer(strideConfig.PlatformBaseURL),
		c.HTTPClient,
		c.Exporter.Metrics(),
		c.Logger,
	)
}

// initServices initializes application services
func (c *Container) initServices() {
	c.NotificationRouter = services.NewNotificationRouter(
		c.Logger,
		c.Exporter.Metrics(),
		c.StrideNotifier,
	)
}

// initUseCases initializes use cases
func (c *Container) initUseCases() {
	c.NotifyCheckUseCase = usecases.NewNotifyCheckUseCase(c.NotificationRouter, c.Logger)
}

// Close releases pooled connections
func (c *Container) Close() error {
	if c.HTTPClient != nil {
		c.HTTPClient.CloseIdleConnections()
	}
	return nil
}
