// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "sparsedata"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	inputFlagName   = "input"
	formatFlagName  = "format"
	workersFlagName = "workers"
	localeFlagName  = "locale"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"
	outFlagName     = "out"
	sizeFlagName    = "size"

	inputConfigKey   = "input"
	formatConfigKey  = "output.format"
	localeConfigKey  = "output.locale"
	workersConfigKey = "multiply.workers"
	spySizeConfigKey = "spy.size"

	defaultInput   = "-"
	defaultFormat  = formatSparse
	defaultLocale  = "en"
	defaultWorkers = 1
	defaultSpySize = 10.0

	envPrefix = "SPARSEDATA"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".sparsedata.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds a config file that exists but could not be read. It is
// logged once the logger is configured.
var configErr error

// configDefaults are the fallbacks for keys not set by flags, env or file.
var configDefaults = map[string]any{
	configVersionKey: currentConfigVersion,
	inputConfigKey:   defaultInput,
	formatConfigKey:  defaultFormat,
	localeConfigKey:  defaultLocale,
	workersConfigKey: defaultWorkers,
	spySizeConfigKey: defaultSpySize,

	logFilenameKey:   defaultLogFilename,
	logLevelKey:      defaultLogLevel,
	logVerboseKey:    defaultLogVerbose,
	logMaxSizeKey:    defaultLogMaxSize,
	logMaxBackupsKey: defaultLogMaxBackups,
	logMaxAgeKey:     defaultLogMaxAge,
	logCompressKey:   defaultLogCompress,
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	for key, value := range configDefaults {
		viper.SetDefault(key, value)
	}

	configErr = readConfig()
}

// readConfig loads the config file. A missing file is not an error; the
// defaults and env apply.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
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

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the global slog logger, writing text records to a
// rotated log file. It logs at the configured level, or at Debug when verbose
// is set; Debug includes the per-merge trace of matrix addition.
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

// logger returns the configured logger, or the process default before
// configureLogger ran.
func logger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}

	return globalLogger
}
