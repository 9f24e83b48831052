package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/button"
	"github.com/vango-dev/commonui/pkg/gallery"
	"github.com/vango-dev/commonui/pkg/render"
	"github.com/vango-dev/commonui/pkg/styles"
	"github.com/vango-dev/commonui/pkg/vdom"
)

// VariantInfo is one entry of the /variants listing.
type VariantInfo struct {
	Type         string `json:"type"`
	Mode         string `json:"mode"`
	ContainerKey string `json:"containerKey"`
	LabelKey     string `json:"labelKey"`
}

// Variants lists every supported variant with its style table keys.
func Variants() []VariantInfo {
	supported := button.Supported()
	out := make([]VariantInfo, 0, len(supported))
	for _, v := range supported {
		out = append(out, VariantInfo{
			Type:         v.Type.String(),
			Mode:         v.Mode.String(),
			ContainerKey: button.ContainerKey(v.Type, v.Mode),
			LabelKey:     button.LabelKey(v.Type, v.Mode),
		})
	}
	return out
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	p, err := s.platform(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	if err := gallery.WriteHTML(&buf, p); err != nil {
		s.logger.Error("gallery render failed", "platform", p.String(), "error", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleButton(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := s.platform(q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	node, err := s.renderButton(r.Context(), p, q)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	pretty, _ := strconv.ParseBool(q.Get("pretty"))
	html, err := render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(node)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Variants())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// renderButton parses the query into props and renders them inside a
// button.render span. Every call is counted, including parse failures.
func (s *Server) renderButton(ctx context.Context, p styles.Platform, q url.Values) (*vdom.VNode, error) {
	start := time.Now()
	typeLabel, modeLabel := unknownLabel, unknownLabel

	_, span := s.tracer.Start(ctx, "button.render",
		trace.WithAttributes(
			attribute.String("commonui.platform", p.String()),
			attribute.String("commonui.type", q.Get("type")),
			attribute.String("commonui.mode", q.Get("mode")),
		),
	)
	defer span.End()

	node, err := func() (*vdom.VNode, error) {
		props, err := PropsFromQuery(q)
		if err != nil {
			return nil, err
		}
		typeLabel, modeLabel = props.Type.String(), props.BackgroundMode.String()
		// Preview buttons are clickable unless disabled or waiting.
		props.OnClick = func() {}
		return button.Render(p, props)
	}()

	s.metrics.observe(typeLabel, modeLabel, time.Since(start).Seconds(), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn("button render failed",
			"type", q.Get("type"),
			"mode", q.Get("mode"),
			"code", errorCode(err))
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	span.SetAttributes(attribute.Int("commonui.nodes", vdom.CountNodes(node)))
	return node, nil
}

// PropsFromQuery builds button props from /button query parameters.
func PropsFromQuery(q url.Values) (button.Props, error) {
	var props button.Props

	t, err := button.ParseType(q.Get("type"))
	if err != nil {
		return props, err
	}
	m, err := button.ParseBackgroundMode(q.Get("mode"))
	if err != nil {
		return props, err
	}
	props.Type = t
	props.BackgroundMode = m
	props.Label = q.Get("label")
	props.Icon = vdom.IconType(q.Get("icon"))

	flags := []struct {
		name string
		dst  *bool
	}{
		{"small", &props.Small},
		{"fullWidth", &props.FullWidth},
		{"disabled", &props.Disabled},
		{"waiting", &props.Waiting},
	}
	for _, f := range flags {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return props, errors.New(errors.CodeInvalidConfig).
				WithDetailf("query parameter %s=%q is not a boolean", f.name, raw)
		}
		*f.dst = v
	}
	return props, nil
}

// platform returns the request's platform, falling back to the server
// default.
func (s *Server) platform(q url.Values) (styles.Platform, error) {
	raw := q.Get("platform")
	if raw == "" {
		return s.config.Platform, nil
	}
	p, err := styles.ParsePlatform(raw)
	if err != nil {
		return p, errors.New(errors.CodeInvalidConfig).
			WithDetailf("platform %q must be electron or mobile", raw)
	}
	return p, nil
}

// writeError writes err as plain text. Coded errors keep their code prefix.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if code := errorCode(err); code != "" {
		w.Header().Set("X-Commonui-Error", code)
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error()))
}

func errorCode(err error) string {
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
