package httpkit

import "net/http"

// MountRoot applies a per-scope middleware stack at the router root, then
// invokes mount to register routes on that scoped router. The public paths of
// this service are unversioned (GET / and POST /predict/score), so everything
// mounts at the root rather than under an /api/{version} prefix
//
// example:
//
//	httpkit.MountRoot(r, httpkit.CommonStack(), func(root httpkit.Router) {
//	  score.MountRoutes(root)
//	})
func MountRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Group(func(root Router) {
		if len(mw) > 0 {
			root.Use(mw...)
		}
		mount(root)
	})
}
