package http

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// MountProfiler mounts net/http/pprof under prefix when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	p := "/" + strings.Trim(prefix, "/")
	r.Handle(p+"/pprof/*", http.HandlerFunc(pprof.Index))
	r.Handle(p+"/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
	r.Handle(p+"/pprof/profile", http.HandlerFunc(pprof.Profile))
	r.Handle(p+"/pprof/symbol", http.HandlerFunc(pprof.Symbol))
	r.Handle(p+"/pprof/trace", http.HandlerFunc(pprof.Trace))
}
