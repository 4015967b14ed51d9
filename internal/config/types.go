package config

// Config holds all configuration for the application.
type Config struct {
	DBName       string
	Port         string
	DefaultBoard string
	HistoryLimit int
	SaveRetries  int
	LogLevel     string
	LogFormat    string
	Turso        TursoConfig
	Slack        SlackConfig
	PubSub       PubSubConfig
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type SlackConfig struct {
	Token     string
	ChannelID string
	DryRun    bool
}
type PubSubConfig struct {
	ProjectID string
	Topic     string
}

// SlackEnabled reports whether board changes should be posted to Slack.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}

// PubSubEnabled reports whether board changes should be published.
func (c Config) PubSubEnabled() bool {
	return c.PubSub.ProjectID != "" && c.PubSub.Topic != ""
}
