package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}

// AgentConfig configures the courier-side tracking agent.
type AgentConfig struct {
	ServerBaseURL string
	CourierID     string
}
