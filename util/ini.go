package util

import (
	"os"

	"gopkg.in/ini.v1"
)

// Ini reads the default section of an ini file. A missing file yields an empty map.
func Ini(filename string) (map[string]string, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	cfg, err := ini.Load(filename)
	if err != nil {
		return nil, err
	}
	return cfg.Section("").KeysHash(), nil
}
