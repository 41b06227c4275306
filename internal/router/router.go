// Package router maps route paths to rendered pages.
package router

import (
	"context"
	"io"
	"sync"

	"billed/internal/newbill"
	"billed/internal/routes"
	"billed/internal/view"

	"go.uber.org/zap"
)

// Router is the Navigator used by hosting UIs. Each Navigate call replaces
// the output with the page of the requested route.
type Router struct {
	ctx     context.Context
	store   newbill.Store
	out     io.Writer
	logger  *zap.Logger
	mu      sync.Mutex
	current string
}

var _ newbill.Navigator = (*Router)(nil)

func New(ctx context.Context, store newbill.Store, out io.Writer, logger *zap.Logger) *Router {
	return &Router{
		ctx:    ctx,
		store:  store,
		out:    out,
		logger: logger,
	}
}

func (r *Router) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !routes.Known(route) {
		r.logger.Warn("Unknown route, falling back to login", zap.String("route", route))
		route = routes.Login
	}
	r.current = route

	var err error
	switch route {
	case routes.Bills:
		err = r.renderBills()
	case routes.NewBill:
		err = view.NewBill(r.out)
	default:
		err = view.Login(r.out)
	}
	if err != nil {
		r.logger.Error("Failed to render page", zap.String("route", route), zap.Error(err))
	}
}

// Current returns the last route navigated to.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *Router) renderBills() error {
	bills, err := r.store.Bills().List(r.ctx)
	if err != nil {
		r.logger.Warn("Failed to list bills", zap.Error(err))
		return view.Bills(r.out, view.BillsData{Error: err.Error()})
	}
	return view.Bills(r.out, view.BillsData{Bills: bills})
}
