package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sigil-dev/sigil/pkg/render"
	"github.com/sigil-dev/sigil/pkg/runtime"
)

const tracerName = "sigil"

// handleWS upgrades the connection, mounts a fresh runtime for it, and
// pushes an HTML frame on every flush until the client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	s.metrics.sessionsActive.Inc()
	defer s.metrics.sessionsActive.Dec()

	rt, err := runtime.Mount(s.root(), runtime.WithLogger(s.logger))
	if err != nil {
		s.logger.Error("mount failed", "err", err)
		return
	}
	defer rt.Unmount()

	// Read pump: the client sends nothing meaningful, but reading is
	// what notices the connection closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	tracer := otel.Tracer(tracerName)

	if err := s.pushFrame(r, conn, rt, tracer); err != nil {
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-rt.Wake():
			if err := s.pushFrame(r, conn, rt, tracer); err != nil {
				return
			}
		}
	}
}

// pushFrame flushes the runtime and writes the committed tree as one
// HTML text message.
func (s *Server) pushFrame(r *http.Request, conn *websocket.Conn, rt *runtime.Runtime, tracer trace.Tracer) error {
	_, span := tracer.Start(r.Context(), "sigil.update",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	start := time.Now()

	if err := rt.Flush(); err != nil {
		s.metrics.renderErrors.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("flush failed", "err", err)
		return err
	}

	html, err := render.ToString(rt.Committed())
	if err != nil {
		s.metrics.renderErrors.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	s.metrics.renderDuration.Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("sigil.frame_bytes", len(html)))
	span.SetStatus(codes.Ok, "")

	if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
		return err
	}
	s.metrics.framesTotal.Inc()
	return nil
}
