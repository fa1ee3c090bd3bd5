package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// TaskTracker WebUI specifics
	Tracker TrackerConfig
	Form    FormConfig
	CORS    CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port         int
	Mode         string
	TemplateGlob string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TrackerConfig locates the downstream TaskTracker API.
type TrackerConfig struct {
	HostAddress        string
	Port               int
	AddTaskPath        string
	InsecureSkipVerify bool
}

// AddTaskURL assembles the add-task endpoint from the host, port and path parts.
func (c TrackerConfig) AddTaskURL() string {
	return fmt.Sprintf("%s:%d/%s", c.HostAddress, c.Port, strings.TrimPrefix(c.AddTaskPath, "/"))
}

// FormConfig tunes submission handling.
type FormConfig struct {
	RateLimitPerMin int
	Timezone        string // IANA name; empty means the server's local time
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/tasktracker/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/tasktracker/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TemplateGlob = viper.GetString("http_server.template_glob")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// TaskTracker API
	cfg.Tracker.HostAddress = viper.GetString("tracker.host_address")
	cfg.Tracker.Port = viper.GetInt("tracker.port")
	cfg.Tracker.AddTaskPath = viper.GetString("tracker.add_task_path")
	cfg.Tracker.InsecureSkipVerify = viper.GetBool("tracker.insecure_skip_verify")
	if trackerHost := viper.GetString("tracker_host_address"); trackerHost != "" {
		cfg.Tracker.HostAddress = trackerHost
	}

	if cfg.Tracker.HostAddress == "" {
		return nil, fmt.Errorf("no tracker host configured - please add a tracker.host_address entry to config.yaml")
	}

	// Form handling
	cfg.Form.RateLimitPerMin = viper.GetInt("form.rate_limit_per_min")
	cfg.Form.Timezone = viper.GetString("form.timezone")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.template_glob", "web/templates/*")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("tracker.port", 80)
	viper.SetDefault("tracker.add_task_path", "task/add")
	viper.SetDefault("tracker.insecure_skip_verify", false)
	viper.SetDefault("form.rate_limit_per_min", 60)
}
