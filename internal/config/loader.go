package config

import (
	"os"
	"path/filepath"

	"github.com/aleister1102/pageprobe/internal/common"
)

// maxConfigFileSize bounds config reads to keep a bad path from exhausting memory.
const maxConfigFileSize = 10 * 1024 * 1024

// GetConfigPath determines the configuration file path based on command-line flags,
// environment variables, and default locations.
// Priority:
// 1. -config command-line flag
// 2. PAGEPROBE_CONFIG_PATH environment variable
// 3. config.yaml in the current working directory
// 4. config.json in the current working directory
// 5. config.yaml in the executable's directory
// 6. config.json in the executable's directory
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if _, err := os.Stat(configFilePathFlag); err == nil {
			return configFilePathFlag
		}
	}

	envPath := os.Getenv("PAGEPROBE_CONFIG_PATH")
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	cwd, errCwd := os.Getwd()
	exePath, errExe := os.Executable()
	exeDir := ""
	if errExe == nil {
		exeDir = filepath.Dir(exePath)
	}

	defaultFiles := []string{"config.yaml", "config.json"}
	locations := []string{}

	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if errExe == nil && exeDir != "" && (errCwd != nil || exeDir != cwd) {
		locations = append(locations, exeDir)
	}

	for _, loc := range locations {
		for _, file := range defaultFiles {
			path := filepath.Join(loc, file)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// readConfigFile reads the config file with a size ceiling
func readConfigFile(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "config file '%s' is not accessible", filePath)
	}
	if info.IsDir() {
		return nil, common.NewError("config path '%s' is a directory", filePath)
	}
	if info.Size() > maxConfigFileSize {
		return nil, common.NewError("config file '%s' exceeds maximum size of %d bytes", filePath, maxConfigFileSize)
	}
	return os.ReadFile(filePath)
}
