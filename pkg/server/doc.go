// Package server serves the button gallery over HTTP.
//
// Routes:
//
//	GET /           full gallery for ?platform= (default: the server platform)
//	GET /button     one button from query props: type, mode, label, icon,
//	                small, fullWidth, disabled, waiting, platform, pretty
//	GET /variants   supported variants as JSON
//	GET /healthz    liveness
//	GET /metrics    Prometheus metrics (unless disabled)
//
// An unsupported or unparsable button answers 400 with the coded error text
// and its code in the X-Commonui-Error header.
//
// Every /button render is counted in commonui_button_renders_total by type,
// mode and status, timed in commonui_button_render_duration_seconds, and
// traced as a button.render span:
//
//	srv := server.New(
//	    server.WithAddress("localhost:3100"),
//	    server.WithRegistry(prometheus.NewRegistry()),
//	    server.WithTracer(otel.Tracer("commonui")),
//	)
//	r := chi.NewRouter()
//	r.Mount("/ui", srv.Handler())
package server
