// Package timeouts defines timeout and delay constants for the host bridge.
package timeouts

import "time"

const (
	// HTTP Server Timeouts

	// ReadHeaderTimeout bounds how long a client may take to send request
	// headers.
	ReadHeaderTimeout = 5 * time.Second

	// ReadTimeout is the maximum time to read a full request, body included.
	// Invocation bodies are a handful of strings, so this stays short.
	ReadTimeout = 10 * time.Second

	// WriteTimeout is the maximum time to write a response. It covers the
	// invocation itself, and the slowest call (TurnAllOff) sends 94 MIDI
	// messages.
	WriteTimeout = 30 * time.Second

	// IdleTimeout is how long keep-alive connections are held open.
	IdleTimeout = 60 * time.Second

	// ShutdownGracePeriod allows in-flight requests to finish after an
	// interrupt before connections are dropped.
	ShutdownGracePeriod = 5 * time.Second

	// Websocket Timeouts

	// WebsocketWriteWait is the time allowed to write a frame to the peer.
	WebsocketWriteWait = 10 * time.Second

	// WebsocketPongWait is the time allowed to read the next pong from the
	// peer before the connection is considered dead.
	WebsocketPongWait = 60 * time.Second

	// WebsocketPingPeriod sends pings to the peer. Must be less than
	// WebsocketPongWait.
	WebsocketPingPeriod = (WebsocketPongWait * 9) / 10
)
