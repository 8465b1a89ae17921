package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all assistant configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant core
	Assistant AssistantConfig
	Intent    IntentConfig
	LLM       LLMConfig

	// Collaborators
	SMTP        SMTPConfig
	HuggingFace HuggingFaceConfig
	Search      SearchConfig
	Instant     InstantConfig
	Calendar    GoogleCalendarConfig
	Telegram    TelegramConfig
	Speech      SpeechConfig
	Launcher    LauncherConfig
	Proxy       ProxyConfig
	IPC         IPCConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// Trusted lets API callers run host actions and read the conversation log.
	Trusted bool
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig holds persona and persistence settings.
type AssistantConfig struct {
	Name         string
	Username     string
	DataDir      string
	ChatLogPath  string
	HistoryLimit int
	Timezone     string
}

// IntentConfig controls classification and routing.
type IntentConfig struct {
	Lexicon    []string
	MaxRetries int
	CacheSize  int
	CacheTTL   time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`

	// Provider names used by the classifier. Empty means all enabled providers.
	ClassifierProviders []string `yaml:"classifier_providers"`
	// Provider names used for chat, realtime answers and drafting.
	ChatProviders []string `yaml:"chat_providers"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	UseTLS   bool
	From     string
}

// Configured reports whether enough settings exist to send mail.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Password != ""
}

type HuggingFaceConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	ImageCount int
}

type SearchConfig struct {
	APIKey     string
	EngineID   string
	MaxResults int
}

type InstantConfig struct {
	CurrencyURL string
	GeocodeURL  string
	WeatherURL  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	// Ngrok local API used to discover the public webhook URL.
	NgrokAPI string
	// Chat IDs allowed to talk to the bot. Empty allows every chat.
	AllowedChats []int64
	Timeout      time.Duration
}

type SpeechConfig struct {
	Mode          string
	ListenCommand []string
	SpeakCommand  []string
	MaxListen     time.Duration
	Speak         bool
}

type LauncherConfig struct {
	Editor   string
	Browser  string
	Mute     []string
	Unmute   []string
	VolUp    []string
	VolDown  []string
	AppAlias map[string]string
}

type ProxyConfig struct {
	SOCKS5 string
}

type IPCConfig struct {
	SocketPath string
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

// Load loads configuration using Viper.
// A .env file is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/voice-assistant/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from an explicit file when path is not empty.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/voice-assistant/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.Trusted = viper.GetBool("http_server.trusted")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.Name = viper.GetString("assistant.name")
	cfg.Assistant.Username = viper.GetString("assistant.username")
	cfg.Assistant.DataDir = viper.GetString("assistant.data_dir")
	cfg.Assistant.ChatLogPath = viper.GetString("assistant.chatlog_path")
	if cfg.Assistant.ChatLogPath == "" {
		cfg.Assistant.ChatLogPath = cfg.Assistant.DataDir + string(os.PathSeparator) + "ChatLog.json"
	}
	cfg.Assistant.HistoryLimit = viper.GetInt("assistant.history_limit")
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")

	cfg.Intent.Lexicon = splitList(viper.GetStringSlice("intent.lexicon"))
	cfg.Intent.MaxRetries = viper.GetInt("intent.max_retries")
	cfg.Intent.CacheSize = viper.GetInt("intent.cache_size")
	cfg.Intent.CacheTTL = viper.GetDuration("intent.cache_ttl")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.ClassifierProviders = splitList(viper.GetStringSlice("llm.classifier_providers"))
	cfg.LLM.ChatProviders = splitList(viper.GetStringSlice("llm.chat_providers"))

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}
	// A bare GROQ_API_KEY is enough to get a working classifier.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("groq_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "groq",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("groq_model"),
			})
		}
	}
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// SMTP
	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.User = viper.GetString("smtp.user")
	cfg.SMTP.Password = viper.GetString("smtp.pass")
	cfg.SMTP.UseTLS = viper.GetBool("smtp.use_tls")
	cfg.SMTP.From = viper.GetString("smtp.from")
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	cfg.HuggingFace.APIKey = viper.GetString("huggingface.api_key")
	if key := viper.GetString("huggingface_api_key"); key != "" {
		cfg.HuggingFace.APIKey = key
	}
	cfg.HuggingFace.Model = viper.GetString("huggingface.model")
	cfg.HuggingFace.BaseURL = viper.GetString("huggingface.base_url")
	cfg.HuggingFace.ImageCount = viper.GetInt("huggingface.image_count")

	cfg.Search.APIKey = viper.GetString("search.api_key")
	cfg.Search.EngineID = viper.GetString("search.engine_id")
	cfg.Search.MaxResults = viper.GetInt("search.max_results")

	cfg.Instant.CurrencyURL = viper.GetString("instant.currency_url")
	cfg.Instant.GeocodeURL = viper.GetString("instant.geocode_url")
	cfg.Instant.WeatherURL = viper.GetString("instant.weather_url")

	cfg.Calendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.Calendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.Calendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Calendar.CredentialsPath = googleCreds
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	cfg.Telegram.Timeout = viper.GetDuration("telegram.timeout")
	allowed, err := parseChatIDs(splitList(viper.GetStringSlice("telegram.allowed_chats")))
	if err != nil {
		return nil, err
	}
	cfg.Telegram.AllowedChats = allowed
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Speech.Mode = viper.GetString("speech.mode")
	cfg.Speech.ListenCommand = viper.GetStringSlice("speech.listen_command")
	cfg.Speech.SpeakCommand = viper.GetStringSlice("speech.speak_command")
	cfg.Speech.MaxListen = viper.GetDuration("speech.max_listen")
	cfg.Speech.Speak = viper.GetBool("speech.speak")

	cfg.Launcher.Editor = viper.GetString("launcher.editor")
	cfg.Launcher.Browser = viper.GetString("launcher.browser")
	cfg.Launcher.Mute = viper.GetStringSlice("launcher.mute")
	cfg.Launcher.Unmute = viper.GetStringSlice("launcher.unmute")
	cfg.Launcher.VolUp = viper.GetStringSlice("launcher.volume_up")
	cfg.Launcher.VolDown = viper.GetStringSlice("launcher.volume_down")
	cfg.Launcher.AppAlias = viper.GetStringMapString("launcher.app_alias")

	cfg.Proxy.SOCKS5 = viper.GetString("proxy.socks5")
	cfg.IPC.SocketPath = viper.GetString("ipc.socket_path")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.trusted", false)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.name", "Jarvis")
	viper.SetDefault("assistant.username", "User")
	viper.SetDefault("assistant.data_dir", "Data")
	viper.SetDefault("assistant.history_limit", 50)
	viper.SetDefault("assistant.timezone", "Local")

	viper.SetDefault("intent.max_retries", 3)
	viper.SetDefault("intent.cache_size", 256)
	viper.SetDefault("intent.cache_ttl", "10m")

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("groq_model", "llama-3.3-70b-versatile")

	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("smtp.use_tls", true)

	viper.SetDefault("huggingface.model", "black-forest-labs/FLUX.1-dev")
	viper.SetDefault("huggingface.base_url", "https://api-inference.huggingface.co/models/")
	viper.SetDefault("huggingface.image_count", 4)

	viper.SetDefault("search.max_results", 5)

	viper.SetDefault("instant.currency_url", "https://open.er-api.com/v6/latest/")
	viper.SetDefault("instant.geocode_url", "https://geocoding-api.open-meteo.com/v1/search")
	viper.SetDefault("instant.weather_url", "https://api.open-meteo.com/v1/forecast")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("telegram.ngrok_api", "http://localhost:4040")
	viper.SetDefault("telegram.timeout", "2m")

	viper.SetDefault("speech.mode", "text")
	viper.SetDefault("speech.max_listen", "15s")
	viper.SetDefault("speech.speak", false)
	viper.SetDefault("speech.speak_command", []string{"espeak-ng"})

	viper.SetDefault("ipc.socket_path", "/tmp/voice-assistant.sock")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration.
// An empty provider list is allowed: the assistant then routes heuristically.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseChatIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, r := range raw {
		id, err := strconv.ParseInt(r, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("telegram.allowed_chats: invalid chat id %q", r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
