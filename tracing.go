// Copyright (c) SandboxAQ. All rights reserved.
// SPDX-License-Identifier: AGPL-3.0-only

package hostfxr

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fasetto/hostfxr/status"
)

const tracerName = "github.com/fasetto/hostfxr"

// Span names, one per hosting stage.
const (
	spanInitialize         = "hostfxr.initialize_for_runtime_config"
	spanGetDelegate        = "hostfxr.get_runtime_delegate"
	spanClose              = "hostfxr.close"
	spanLoadAssembly       = "hostfxr.load_assembly_and_get_function_pointer"
	spanLoadAssemblyLoader = "hostfxr.load_assembly_loader"
)

// Attribute keys.
const (
	attrStatus         = attribute.Key("hostfxr.status")
	attrStatusName     = attribute.Key("hostfxr.status.name")
	attrRuntimeConfig  = attribute.Key("hostfxr.runtime_config")
	attrDelegateKind   = attribute.Key("hostfxr.delegate_kind")
	attrAssembly       = attribute.Key("hostfxr.assembly")
	attrTypeName       = attribute.Key("hostfxr.type")
	attrMethod         = attribute.Key("hostfxr.method")
	attrDelegateType   = attribute.Key("hostfxr.delegate_type")
	attrAlreadyStarted = attribute.Key("hostfxr.host_already_initialized")
)

// stageTracer starts the spans of the hosting stages.
type stageTracer struct {
	tracer trace.Tracer
}

func newStageTracer(tp trace.TracerProvider) stageTracer {
	return stageTracer{tracer: tp.Tracer(tracerName)}
}

// start starts the span of a stage. A nil ctx is treated as
// context.Background().
func (st stageTracer) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return st.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// recordStatus attaches a native status code to the span.
func recordStatus(span trace.Span, code status.Code) {
	span.SetAttributes(
		attrStatus.String(code.Hex()),
		attrStatusName.String(code.String()),
	)
}

// endSpan ends the span, marking it failed when err is not nil.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
