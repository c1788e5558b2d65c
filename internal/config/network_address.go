package config

import (
	"fmt"
	"net"
	"strconv"
)

type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetworkAddress) Set(value string) error {
	host, portValue, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	port, err := strconv.Atoi(portValue)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %d (must be 1-65535)", port)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
