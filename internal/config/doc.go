// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for csvdiff's user
// configuration. The configuration is an optional YAML document located in the
// user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/csvdiff.yaml or $HOME/.config/csvdiff.yaml
//   - Windows: %APPDATA%/csvdiff.yaml
//
// CSVDIFF_CFG_FILE overrides the location. Keys are addressed with dotted
// paths, e.g. "diff.key" or "colors.add".
package config
