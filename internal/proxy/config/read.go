package config

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/yndnr/velocity-go/internal/infra/confloader"
)

var (
	// ErrInvalidServerEntry is returned when an entry of the servers table
	// is neither a server address nor the fallback order.
	ErrInvalidServerEntry = errors.New("invalid server entry")
	// ErrOutOfRange is returned when an integer does not fit its field.
	ErrOutOfRange = errors.New("value out of range")
	// ErrEmptyPath is returned when Read is called without a path.
	ErrEmptyPath = errors.New("config path is empty")
)

// Document keys.
const (
	keyBind           = "bind"
	keyMotd           = "motd"
	keyShowMaxPlayers = "show-max-players"
	keyOnlineMode     = "online-mode"
	keyIPForwarding   = "ip-forwarding"
	keyServers        = "servers"
	keyTry            = "try"
)

// Read loads the configuration document at path.
//
// Every field is required and type checked. On failure no Configuration is
// returned; the error wraps a *confloader.FieldError for missing or
// mistyped fields, ErrUnknownForwardingMode, ErrInvalidServerEntry or the
// underlying read/parse error.
func Read(path string) (*Configuration, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	loader := confloader.NewLoader()
	if err := loader.LoadFile(path); err != nil {
		return nil, fmt.Errorf("read proxy config: %w", err)
	}

	cfg, err := fromLoader(loader)
	if err != nil {
		return nil, fmt.Errorf("read proxy config %s: %w", path, err)
	}
	return cfg, nil
}

func fromLoader(l *confloader.Loader) (*Configuration, error) {
	bind, err := l.String(keyBind)
	if err != nil {
		return nil, err
	}

	motd, err := l.String(keyMotd)
	if err != nil {
		return nil, err
	}

	players, err := l.Int64(keyShowMaxPlayers)
	if err != nil {
		return nil, err
	}
	if players < math.MinInt32 || players > math.MaxInt32 {
		return nil, &confloader.FieldError{Key: keyShowMaxPlayers, Got: players, Err: ErrOutOfRange}
	}

	online, err := l.Bool(keyOnlineMode)
	if err != nil {
		return nil, err
	}

	forwarding, err := l.String(keyIPForwarding)
	if err != nil {
		return nil, err
	}
	mode, err := ParseIPForwardingMode(forwarding)
	if err != nil {
		return nil, err
	}

	table, err := l.Table(keyServers)
	if err != nil {
		return nil, err
	}
	servers, order, err := parseServers(table)
	if err != nil {
		return nil, err
	}

	return &Configuration{
		bind:                   bind,
		motd:                   motd,
		showMaxPlayers:         int32(players),
		onlineMode:             online,
		ipForwardingMode:       mode,
		servers:                servers,
		attemptConnectionOrder: order,
	}, nil
}

// parseServers splits the servers table into addresses and the fallback
// order held by the single "try" entry.
func parseServers(table map[string]any) (map[string]string, []string, error) {
	servers := make(map[string]string, len(table))
	var (
		order  []string
		tryKey string
	)

	for _, name := range slices.Sorted(maps.Keys(table)) {
		value := table[name]
		isTry := strings.EqualFold(name, keyTry)

		if addr, ok := value.(string); ok && !isTry {
			servers[name] = addr
			continue
		}
		if !isTry {
			return nil, nil, fmt.Errorf("%w: server entry %s is not a string", ErrInvalidServerEntry, name)
		}
		if tryKey != "" {
			return nil, nil, fmt.Errorf("%w: both %s and %s define the fallback order", ErrInvalidServerEntry, tryKey, name)
		}

		list, err := confloader.AsStringSlice(keyServers+"."+name, value)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s must be a list of server names: %w", ErrInvalidServerEntry, name, err)
		}
		tryKey = name
		order = list
	}

	if tryKey == "" {
		return nil, nil, &confloader.FieldError{Key: keyServers + "." + keyTry, Err: confloader.ErrMissingKey}
	}
	return servers, order, nil
}
