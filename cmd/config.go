package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"tgrep.dev/pkg/tgrep/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tgrep"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	patternFlagName     = "pattern"
	parallelFlagName    = "parallel"
	debounceFlagName    = "debounce"
	maxFileSizeFlagName = "max-file-size"
	excludeFlagName     = "exclude"
	hiddenFlagName      = "hidden"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"
	summaryFlagName     = "summary"

	searchParallelKey    = "search.parallel"
	searchDebounceKey    = "search.debounce_ms"
	searchMaxFileSizeKey = "search.max_file_size"
	searchExcludeKey     = "search.exclude"
	searchHiddenKey      = "search.hidden"

	defaultDebounceMs  = 50
	defaultMaxFileSize = domain.DefaultMaxFileSize
	defaultHidden      = false

	envPrefix = "TGREP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultParallel    = runtime.NumCPU()
	defaultLogFilename = filepath.Join(os.TempDir(), "tgrep.log")
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(searchParallelKey, defaultParallel)
	viper.SetDefault(searchDebounceKey, defaultDebounceMs)
	viper.SetDefault(searchMaxFileSizeKey, defaultMaxFileSize)
	viper.SetDefault(searchExcludeKey, []string{})
	viper.SetDefault(searchHiddenKey, defaultHidden)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Ignoring unreadable config file", "file", configFileName, "error", err)
	}
}

// settings is the effective configuration as printed by the config command.
type settings struct {
	Version int            `yaml:"version"`
	Search  searchSettings `yaml:"search"`
	Log     logSettings    `yaml:"log"`
}

type searchSettings struct {
	Parallel    int      `yaml:"parallel"`
	DebounceMs  int      `yaml:"debounce_ms"`
	MaxFileSize int64    `yaml:"max_file_size"`
	Exclude     []string `yaml:"exclude"`
	Hidden      bool     `yaml:"hidden"`
}

type logSettings struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	Verbose    bool   `yaml:"verbose"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

func loadSettings() settings {
	return settings{
		Version: viper.GetInt(configVersionKey),
		Search: searchSettings{
			Parallel:    viper.GetInt(searchParallelKey),
			DebounceMs:  viper.GetInt(searchDebounceKey),
			MaxFileSize: viper.GetInt64(searchMaxFileSizeKey),
			Exclude:     viper.GetStringSlice(searchExcludeKey),
			Hidden:      viper.GetBool(searchHiddenKey),
		},
		Log: logSettings{
			Filename:   viper.GetString(logFilenameKey),
			Level:      viper.GetString(logLevelKey),
			Verbose:    viper.GetBool(logVerboseKey),
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		},
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at a rotating log file.
// The terminal belongs to the interface, so nothing is logged to stderr.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
