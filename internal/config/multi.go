package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrNoConfig = errors.New("no config selected")

const (
	appName      = "repolabel"
	defaultLabel = "Default"
	profileExt   = ".yaml"
)

// ConfigRoot is $APPDATA/repolabel on Windows, otherwise
// $XDG_CONFIG_HOME/repolabel or ~/.config/repolabel.
func ConfigRoot() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, appName)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

func ConfigsDir() string {
	return filepath.Join(ConfigRoot(), "configs")
}

func CurrentLabelFile() string {
	return filepath.Join(ConfigRoot(), "current_config")
}

// DefaultCachePath is where the README cache lives unless cache_path is set.
func DefaultCachePath() string {
	return filepath.Join(ConfigRoot(), "cache.db")
}

func profilePath(label string) string {
	return filepath.Join(ConfigsDir(), label+profileExt)
}

func checkLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return errors.New("label cannot be empty")
	}
	if strings.ContainsAny(label, `/\`) {
		return fmt.Errorf("label %q cannot contain path separators", label)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func ensureDirs() error {
	return os.MkdirAll(ConfigsDir(), 0755)
}

func writeCurrent(label string) error {
	return os.WriteFile(CurrentLabelFile(), []byte(label), 0644)
}

func CurrentLabel() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(CurrentLabelFile())
	switch {
	case os.IsNotExist(err):
		return "", ErrNoConfig
	case err != nil:
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

// ActiveConfigPath returns the YAML file of the selected profile.
func ActiveConfigPath() (string, error) {
	label, err := CurrentLabel()
	if err != nil || label == "" {
		return "", ErrNoConfig
	}

	return profilePath(label), nil
}

func ConfigPathByLabel(label string) (string, error) {
	if err := checkLabel(label); err != nil {
		return "", err
	}

	path := profilePath(label)
	if !exists(path) {
		return "", fmt.Errorf("config %q does not exist", label)
	}

	return path, nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool
}

// ListConfigs returns every profile sorted by label.
func ListConfigs() ([]ConfigInfo, error) {
	if err := ensureDirs(); err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(ConfigsDir(), "*"+profileExt))
	if err != nil {
		return nil, err
	}

	active, _ := CurrentLabel()
	out := make([]ConfigInfo, 0, len(matches))
	for _, path := range matches {
		label := strings.TrimSuffix(filepath.Base(path), profileExt)
		out = append(out, ConfigInfo{Label: label, Path: path, Active: label == active})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

func SwitchConfig(label string) error {
	if _, err := ConfigPathByLabel(label); err != nil {
		return err
	}

	return writeCurrent(label)
}

// CreateEmptyConfig writes a profile with default values.
func CreateEmptyConfig(label string) (string, error) {
	if err := checkLabel(label); err != nil {
		return "", err
	}
	if err := ensureDirs(); err != nil {
		return "", err
	}

	path := profilePath(label)
	if exists(path) {
		return "", fmt.Errorf("config %q already exists", label)
	}

	return path, SaveYAML(DefaultConfig(), path)
}

// RenameConfig moves a profile, following it with the active selection.
func RenameConfig(oldLabel, newLabel string) error {
	oldPath, err := ConfigPathByLabel(oldLabel)
	if err != nil {
		return err
	}
	if err := checkLabel(newLabel); err != nil {
		return fmt.Errorf("new %w", err)
	}

	newPath := profilePath(newLabel)
	if exists(newPath) {
		return fmt.Errorf("config %q already exists", newLabel)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	if active, _ := CurrentLabel(); active == oldLabel {
		return writeCurrent(newLabel)
	}

	return nil
}

// RemoveConfig deletes a profile. Removing the active profile falls back to
// Default; the Default profile itself cannot be removed.
func RemoveConfig(label string) (switched bool, err error) {
	if label == defaultLabel {
		return false, errors.New("cannot remove the Default config")
	}

	path, err := ConfigPathByLabel(label)
	if err != nil {
		return false, err
	}

	if active, _ := CurrentLabel(); active == label {
		if err := SwitchConfig(defaultLabel); err != nil {
			return false, fmt.Errorf("failed switching to Default: %w", err)
		}
		switched = true
	}

	return switched, os.Remove(path)
}

// InitDefaultConfig creates and selects the Default profile. When it
// already exists it is only selected and os.ErrExist is returned.
func InitDefaultConfig() (string, error) {
	if err := ensureDirs(); err != nil {
		return "", err
	}

	path := profilePath(defaultLabel)
	if !exists(path) {
		if err := SaveYAML(DefaultConfig(), path); err != nil {
			return "", err
		}
		return path, writeCurrent(defaultLabel)
	}

	if err := writeCurrent(defaultLabel); err != nil {
		return "", err
	}
	return path, os.ErrExist
}
