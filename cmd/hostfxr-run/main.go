// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

// hostfxr-run loads the .NET hosting library, resolves a managed method to a
// native function pointer and optionally calls it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/fasetto/hostfxr"
)

func main() {
	var (
		settings      = flag.String("config", "", "Path to a JSON settings file (library_path, runtime_config)")
		library       = flag.String("library", "", "Path to the hosting library (default: platform search path)")
		runtimeConfig = flag.String("runtimeconfig", "", "Path to the .runtimeconfig.json file")
		assembly      = flag.String("assembly", "", "Path to the managed assembly")
		typeName      = flag.String("type", "", "Assembly qualified type name, e.g. \"App.Program, App\"")
		method        = flag.String("method", "", "Method name")
		delegateType  = flag.String("delegate", "", "Delegate type name (default: [UnmanagedCallersOnly] method)")
		invoke        = flag.Bool("invoke", false, "Call the resolved method with no arguments")
		verbose       = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *assembly == "" || *typeName == "" || *method == "" {
		fmt.Fprintln(os.Stderr, "Usage: hostfxr-run -runtimeconfig <app.runtimeconfig.json> -assembly <app.dll> -type <type> -method <name> [-delegate <type>] [-invoke]")
		os.Exit(2)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(*settings, *library, *runtimeConfig)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	dt := hostfxr.UnmanagedCallersOnly()
	if *delegateType != "" {
		dt = hostfxr.NamedDelegate(*delegateType)
	}

	if err := run(context.Background(), logger, cfg, *assembly, *typeName, *method, dt, *invoke); err != nil {
		logger.Fatal("hosting failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig reads the optional settings file and applies the flags on top
// of it.
func loadConfig(path, library, runtimeConfig string) (*hostfxr.Config, error) {
	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	}
	if library != "" {
		raw["library_path"] = library
	}
	if runtimeConfig != "" {
		raw["runtime_config"] = runtimeConfig
	}

	cfg, err := hostfxr.DecodeConfig(raw)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, logger *zap.Logger, cfg *hostfxr.Config, assembly, typeName, method string, dt hostfxr.DelegateType, invoke bool) error {
	logger.Info("loading hostfxr", zap.String("library", cfg.LibraryPath), zap.String("runtime_config", cfg.RuntimeConfigPath))

	_, loader, err := hostfxr.Open(ctx, cfg, hostfxr.WithLogger(logger))
	if err != nil {
		return err
	}

	fn, err := loader.LoadAssemblyAndGetFunctionPointer(ctx, assembly, typeName, method, dt, 0)
	if err != nil {
		return err
	}
	fmt.Printf("%s.%s resolved at 0x%x\n", typeName, method, fn)

	if invoke {
		logger.Info("calling managed method", zap.String("method", method), zap.Uintptr("function", fn))
		purego.SyscallN(fn)
	}
	return nil
}
