package router

import (
	"context"
	"net/http"

	"github.com/studyhive-lab/backend/config"
	"github.com/studyhive-lab/backend/pkg/logger"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// HandlerFunc is the signature of all domain methods mounted on the router.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can derive a new context (return
// a non-nil context) or stop the request by returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is determined, whether or not the
// handler succeeded.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux

	db     *gorm.DB
	cfg    config.Configs
	logger logger.Logger

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain. Routes registered on the branch inherit the middlewares
// registered on it so far.
func (r *Router) Branch() *Router {
	clone := &Router{
		mux:    r.mux,
		db:     r.db,
		cfg:    r.cfg,
		logger: r.logger,
	}

	clone.befores = append(clone.befores, r.befores...)
	clone.afters = append(clone.afters, r.afters...)
	clone.closers = append(clone.closers, r.closers...)
	return clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	r *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	befores := r.befores
	afters := r.afters
	closers := r.closers

	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.logger)
		ctx = xcontext.WithDB(ctx, r.db)
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)

		func() {
			if req.Method != method {
				ctx = xcontext.WithError(ctx, errMethodNotAllowed)
				return
			}

			for _, m := range befores {
				newCtx, err := m(ctx)
				if err != nil {
					ctx = xcontext.WithError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			var body Request
			if err := bindRequest(req, method, &body); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
				ctx = xcontext.WithError(ctx, errBadRequest)
				return
			}

			resp, err := handler(ctx, &body)
			if err != nil {
				ctx = xcontext.WithError(ctx, err)
				return
			}

			ctx = xcontext.WithResponse(ctx, resp)
			for _, m := range afters {
				newCtx, err := m(ctx)
				if err != nil {
					ctx = xcontext.WithError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}
		}()

		handleResponse(ctx)
		for _, closer := range closers {
			closer(ctx)
		}
	}
}
