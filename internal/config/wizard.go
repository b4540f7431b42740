package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// WizardAnswers are the values collected by RunWizard.
type WizardAnswers struct {
	Port            int
	LogFormat       string
	LogLevel        string
	AllowAllOrigins bool
	AllowedOrigins  []string
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the sample API.")
	fmt.Println()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(DefaultPort),
		Validate: validatePortInput,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	// 2. Log format.
	formatPrompt := promptui.Select{
		Label: "Select log format",
		Items: []string{"text", "json"},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format selection: %w", err)
	}

	// 3. Log level.
	levelPrompt := promptui.Select{
		Label:     "Select log level",
		Items:     []string{"debug", "info", "warn", "error"},
		CursorPos: 1,
	}
	_, level, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level selection: %w", err)
	}

	// 4. CORS.
	answers := WizardAnswers{Port: port, LogFormat: format, LogLevel: level}
	corsPrompt := promptui.Prompt{
		Label:     "Allow requests from any origin",
		IsConfirm: true,
		Default:   "y",
	}
	if _, err := corsPrompt.Run(); err == nil {
		answers.AllowAllOrigins = true
	} else if !errors.Is(err, promptui.ErrAbort) {
		return nil, fmt.Errorf("cors: %w", err)
	} else {
		originsPrompt := promptui.Prompt{
			Label:   "Allowed origins (comma-separated)",
			Default: strings.Join(DefaultAllowedOrigins, ","),
		}
		originsStr, err := originsPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("allowed origins: %w", err)
		}
		answers.AllowedOrigins = splitAndTrim(originsStr)
	}

	cfg := answers.Config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// Config builds a full configuration from the answers, keeping defaults
// for everything the wizard does not ask about.
func (a WizardAnswers) Config() *Config {
	cfg := DefaultConfig()
	if a.Port != 0 {
		cfg.Port = a.Port
	}
	if a.LogFormat != "" {
		cfg.LogFormat = a.LogFormat
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	cfg.AllowAllOrigins = a.AllowAllOrigins
	if len(a.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = a.AllowedOrigins
	}
	return cfg
}

func validatePortInput(s string) error {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}
	return ValidatePort(p)
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
