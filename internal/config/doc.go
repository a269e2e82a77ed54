// Package config loads pare's optional YAML configuration.
//
// # Configuration Precedence
//
// Values resolve in the following order (highest to lowest priority):
//
//  1. CLI flags (-theme, -format, -top, -no-color)
//  2. Environment variables (NO_COLOR, PARE_DEBUG)
//  3. YAML config file (.pare.yaml in the working directory or any
//     parent, else ~/.config/pare/.pare.yaml)
//  4. Hardcoded defaults
//
// The file may also extend the column aliases used to resolve the
// activity, rate, and metric columns; built-in spellings always remain.
//
// # Example
//
//	theme: orca
//	format: auto
//	top: 15
//	aliases:
//	  activity: [task, step]
//	  rate: [auto_pct]
//	  cost: [rework_eur]
package config
