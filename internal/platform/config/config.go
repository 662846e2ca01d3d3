package config

import (
	"os"
	"time"
)

// Server captures process-level configuration. VAPID credentials are loaded
// once here and stay immutable for the process lifetime; the push notifier
// receives them by injection, never from globals.
type Server struct {
	Addr            string
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubject    string
	NotifyTimeout   time.Duration
}

// DefaultNotifyTimeout bounds a single notification burst so a stalled push
// endpoint cannot stall request processing.
var DefaultNotifyTimeout = 5 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("REMIT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	subject := os.Getenv("VAPID_SUBJECT")
	if subject == "" {
		subject = "mailto:ops@remit.local"
	}

	notifyTimeout := DefaultNotifyTimeout
	if raw := os.Getenv("NOTIFY_TIMEOUT"); raw != "" {
		if duration, err := time.ParseDuration(raw); err == nil && duration > 0 {
			notifyTimeout = duration
		}
	}

	return Server{
		Addr:            addr,
		VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		VAPIDSubject:    subject,
		NotifyTimeout:   notifyTimeout,
	}
}
