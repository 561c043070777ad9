// Package config loads and validates the engine's YAML configuration.
//
// Configuration is intentionally small: the engine is an in-process
// library, so only logging and engine tuning knobs exist. Precedence is
// defaults < file < environment variables (ENTITYCORE_* pattern).
package config
