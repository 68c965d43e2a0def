// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Config defines where the hosting library and the runtime configuration are.
type Config struct {
	// LibraryPath is the path to the hosting library. An empty path loads
	// native.LibraryName through the platform search path.
	LibraryPath string `mapstructure:"library_path"`

	// RuntimeConfigPath is the path to the `.runtimeconfig.json` file. It is
	// forwarded to the hosting library as is.
	RuntimeConfigPath string `mapstructure:"runtime_config"`
}

// Validate validates the configuration.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("hostfxr: nil config")
	}
	if cfg.RuntimeConfigPath == "" {
		return errors.New("hostfxr: runtime_config is required")
	}
	return nil
}

// DecodeConfig decodes a raw settings map into a Config. Unknown keys are
// rejected.
func DecodeConfig(raw map[string]any) (*Config, error) {
	cfg := new(Config)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("hostfxr: invalid config: %w", err)
	}
	return cfg, nil
}

// library is the part of *Library used by Open.
type library interface {
	SymbolResolver
	Close() error
}

// openLibrary loads the hosting library for Open.
var openLibrary = func(path string) (library, error) {
	lib, err := LoadLibrary(path)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// Open runs the whole bootstrap described by cfg: it loads the hosting
// library, resolves its exports and borrows the assembly loader from a
// runtime context initialized from cfg.RuntimeConfigPath.
//
// The library is unloaded if any stage fails. On success it stays mapped for
// the lifetime of the process, since the returned loader and every function
// pointer it resolves run on it.
func Open(ctx context.Context, cfg *Config, opts ...Option) (*Host, *AssemblyLoader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	lib, err := openLibrary(cfg.LibraryPath)
	if err != nil {
		return nil, nil, err
	}

	host, err := NewHost(lib, opts...)
	if err != nil {
		_ = lib.Close()
		return nil, nil, err
	}

	loader, err := host.LoadAssemblyLoader(ctx, cfg.RuntimeConfigPath)
	if err != nil {
		_ = lib.Close()
		return nil, nil, err
	}
	return host, loader, nil
}
