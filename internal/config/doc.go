// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
// Sources are merged in priority order (env > flags > JSON > defaults) and
// the result is validated before the application starts.
package config
