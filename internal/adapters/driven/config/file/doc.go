// Package file provides file-based implementations of driven port interfaces.
//
// Adapters:
//   - SettingsLoader: TOML settings with .env and environment overrides
//   - PromptStore: user-editable prompt templates with embedded defaults
package file
