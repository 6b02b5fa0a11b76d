package llm

import "testing"

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("TUBEQUIZ_LLM_PROVIDER", "openai")
	t.Setenv("TUBEQUIZ_OPENAI_API_KEY", "sk-test")
	t.Setenv("TUBEQUIZ_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()

	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
}

func TestDefaultConfig_GeminiIsDefault(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Fatalf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Fatalf("default gemini model = %q, want gemini-flash", cfg.Gemini.Model)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("provider = %q, want gemini (highest priority)", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("api key = %q, want g-key", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"gemini missing key", func(c *Config) { c.Provider = "gemini" }, true},
		{"gemini with key", func(c *Config) { c.Provider = "gemini"; c.Gemini.APIKey = "k" }, false},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigWithAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"

	cfg = cfg.WithAPIKey("a-key")
	if cfg.Anthropic.APIKey != "a-key" {
		t.Fatalf("api key = %q, want a-key", cfg.Anthropic.APIKey)
	}
	if cfg.Gemini.APIKey != "" {
		t.Fatal("unexpected key set for non-selected provider")
	}
}

func TestConfigWithModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"

	cfg = cfg.WithModel("gpt-4o")
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Fatal("unexpected model change for non-selected provider")
	}
}

func TestConfigModelName(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ModelName(); got != "gemini-flash" {
		t.Fatalf("ModelName = %q, want gemini-flash", got)
	}

	cfg.Provider = "anthropic"
	if got := cfg.ModelName(); got != "claude-haiku" {
		t.Fatalf("ModelName = %q, want claude-haiku", got)
	}
}
