// Copyright (c) 2026 Gamecodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, header names and device-store key
prefixes that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Device Store: Key taxonomy for per-device persisted state.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "gamecodex-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXDeviceID     = "X-Device-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Device Store Keys (Persistence Taxonomy)

const (
	// KeyPrefixDevice scopes every persisted key to a single device.
	KeyPrefixDevice = "device:"

	// KeyOverlayGuides holds the user-authored guide overlay.
	KeyOverlayGuides = "overlay:guides"

	// KeyPinsQuests and friends hold the pin and completion ledgers.
	KeyPinsQuests      = "ledger:pins:quests"
	KeyPinsGuides      = "ledger:pins:guides"
	KeyCompletedQuests = "ledger:completed:quests"

	// KeyPrefixPreference prefixes UI-preference booleans.
	KeyPrefixPreference = "prefs:"
)

// # Catalog Defaults

const (
	// DefaultPageSize is the number of list entries per page.
	DefaultPageSize = 50

	// MaxDeviceIDLength bounds the X-Device-ID header.
	MaxDeviceIDLength = 128
)
