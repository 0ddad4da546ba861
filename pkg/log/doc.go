/*
Package log provides structured logging for quarry using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. All logs include timestamps and support filtering
by severity level.

# Architecture

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("device")                  │          │
	│  │  - WithDevice("/dev/sda")                   │          │
	│  │  - WithConfigPath("storage/pools/tank")     │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │  JSON (production) or console (dev)         │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Usage

Initializing the Logger:

	import "github.com/quarryos/quarry/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
	})

Simple Logging:

	log.Info("configuration store opened")
	log.Warn("device has no by-id alias")
	log.Fatal("cannot open configuration database") // Exits process

Structured Logging:

	log.Logger.Info().
		Str("device", "/dev/sda").
		Str("by_id", "/dev/disk/by-id/ata-SAMSUNG_860-1").
		Msg("device resolved")

Component Loggers:

	devLog := log.WithComponent("device")
	devLog.Debug().Str("path", raw).Msg("canonicalizing device path")

# Integration Points

This package integrates with:

  - pkg/device: logs alias resolution and geometry probing
  - pkg/configdb: logs store open/close and mutation failures
  - cmd/quarry: initializes the logger from CLI flags

# Best Practices

Do:
  - Use Info level for production
  - Use structured fields for queryable data
  - Create component-specific loggers
  - Log errors with .Err() for error context

Don't:
  - Use Debug level in production
  - Log in tight loops
  - Concatenate strings (use .Str, .Int)
*/
package log
