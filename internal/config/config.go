package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// AdminUsername is the display name allowed to kick participants. The
	// check is a case-sensitive string comparison; there is no role system.
	AdminUsername = "admin"

	// SystemSender labels server-generated room notices (joins, leaves, kicks).
	SystemSender = "RoomChat"

	// SendBufferSize is the per-connection outbound frame buffer. Frames to a
	// client whose buffer is full are dropped rather than stalling dispatch.
	SendBufferSize = 256
)

// Server holds the HTTP server settings, read from ROOMCHAT_* environment
// variables with sensible local defaults.
type Server struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	MaxHeaderBytes  int           `envconfig:"MAX_HEADER_BYTES" default:"1048576"`
}

// Load reads the server configuration from the environment.
func Load() (Server, error) {
	var cfg Server
	if err := envconfig.Process("roomchat", &cfg); err != nil {
		return Server{}, err
	}
	return cfg, nil
}
