package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sigil-dev/sigil/pkg/el"
	"github.com/sigil-dev/sigil/pkg/server"
	sig "github.com/sigil-dev/sigil/pkg/signal"
	"github.com/sigil-dev/sigil/pkg/vdom"
)

// demoState is the application state held by the demo store.
type demoState struct {
	Count int
	User  demoUser
}

type demoUser struct {
	Name string
}

// demoStore is a minimal observable store for the demo binary. The
// core consumes stores through the signal.Store interface only; this
// implementation exists solely to have something to observe.
type demoStore struct {
	mu        sync.Mutex
	state     demoState
	listeners map[uint64]func()
	nextID    uint64
}

func newDemoStore() *demoStore {
	return &demoStore{
		state:     demoState{User: demoUser{Name: "ada"}},
		listeners: make(map[uint64]func()),
	}
}

func (s *demoStore) CurrentState() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *demoStore) Subscribe(listener func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *demoStore) update(fn func(demoState) demoState) {
	s.mu.Lock()
	s.state = fn(s.state)
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

// Selectors are package-level so every derivation hits the cache.
var (
	selectCount = sig.NewSelector(func(state any) any {
		return state.(demoState).Count
	})
	selectUser = sig.NewSelector(func(state any) any {
		return state.(demoState).User
	})
)

// demoRoot builds the demo tree: the count line and the user line each
// re-render independently of the static chrome around them.
func demoRoot(store *demoStore) server.RootFunc {
	return func() *vdom.VNode {
		count := sig.Derive(store, selectCount, nil)
		name := sig.Derive(store, selectUser, nil).Field("Name")

		return el.Div(
			el.H1("sigil demo"),
			el.P("The lines below update from the store; this text never re-renders."),
			el.Div(vdom.Props{"class": "count"}, "count: ", count),
			el.Div(vdom.Props{"class": "user"}, "user: ", name),
		)
	}
}

func demoCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the live demo server",
		Long: `Serves a page whose reactive elements update over a websocket as a
ticker mutates the backing store once per second.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			store := newDemoStore()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				ticker := time.NewTicker(time.Second)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						store.update(func(s demoState) demoState {
							s.Count++
							return s
						})
					}
				}
			}()

			srv := server.New(server.Config{
				Addr:   addr,
				Title:  "sigil demo",
				Logger: logger,
			}, demoRoot(store))

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
