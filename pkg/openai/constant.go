package openai

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Base URLs of OpenAI compatible chat completion endpoints, keyed by provider name.
var DefaultBaseURLs = map[string]string{
	"openai":     "https://api.openai.com/v1/",
	"groq":       "https://api.groq.com/openai/v1/",
	"deepseek":   "https://api.deepseek.com/v1/",
	"qwen":       "https://dashscope-intl.aliyuncs.com/compatible-mode/v1/",
	"openrouter": "https://openrouter.ai/api/v1/",
	"together":   "https://api.together.xyz/v1/",
	"cohere":     "https://api.cohere.ai/compatibility/v1/",
}

// Default models used when a provider entry leaves the model empty.
var DefaultModels = map[string]string{
	"openai":     "gpt-4o-mini",
	"groq":       "llama-3.3-70b-versatile",
	"deepseek":   "deepseek-chat",
	"qwen":       "qwen-plus",
	"openrouter": "openai/gpt-4o-mini",
	"together":   "meta-llama/Llama-3.3-70B-Instruct-Turbo",
	"cohere":     "command-r-plus",
}
