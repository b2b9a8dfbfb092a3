// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for pelorus.
//
// Supports TOML configuration with sensible defaults, .env loading, and
// environment variable overrides.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Backend gateway connection settings
//   - VoiceConfig: Speech capture and audio reply settings
//   - LoggingConfig: Request log settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (PELORUS_*)
//   - .env file in the working directory
//   - ~/.pelorus/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	baseURL := cfg.API.BaseURL
//	timeout := cfg.API.Timeout()
package config
