package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Instagram struct {
		Username    string `env:"IG_USERNAME" env-default:"anipottsbuilds"`
		SessionData string `env:"IG_SESSION_DATA"`
	}
	Cache struct {
		Backend      string `env:"CACHE_BACKEND" env-default:"redis"`
		RedisURL     string `env:"REDIS_URL"`
		UpstashURL   string `env:"UPSTASH_URL"`
		UpstashToken string `env:"UPSTASH_TOKEN"`
		TTLSeconds   int    `env:"CACHE_TTL_SECONDS" env-default:"3600"`
	}
	Refresh struct {
		MaxPosts           int `env:"MAX_POSTS" env-default:"50"`
		MaxLikersPerPost   int `env:"MAX_LIKERS_PER_POST" env-default:"50"`
		MaxCommentsPerPost int `env:"MAX_COMMENTS_PER_POST" env-default:"50"`
		MaxFollowers       int `env:"MAX_FOLLOWERS" env-default:"1000"`
		MaxFollowing       int `env:"MAX_FOLLOWING" env-default:"1000"`
	}
}

// New reads the configuration from the environment. The struct is built
// fresh on every call and threaded through fx; nothing is cached globally.
func New() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, &ConfigError{Help: help, Err: err}
	}
	return cfg, nil
}

type ConfigError struct {
	Help string
	Err  error
}

func (e *ConfigError) Error() string {
	return "failed to read configuration: " + e.Err.Error() + "\n" + e.Help
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
