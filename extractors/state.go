package extractors

import "github.com/torchweb/torch"

// State extracts a shared application value of type T from the state
// container the App injects into every request. A missing type is a
// 500-class failure: the application forgot to register the value, which
// is a wiring bug rather than anything the client did.
//
//	app := torch.New(torch.WithState(db))
//	app.GET("/users", torch.Handler1(func(ctx context.Context, s extractors.State[*Database]) string {
//	    return s.Value.ListUsers()
//	}))
type State[T any] struct {
	Value T
}

func (s *State[T]) ExtractParts(r *torch.Request) error {
	sm := r.State()
	if sm == nil {
		return torch.ErrMissingState("no state container attached to request")
	}
	v, ok := torch.StateOf[T](sm)
	if !ok {
		return torch.ErrMissingState("no value of type %T registered", s.Value)
	}
	s.Value = v
	return nil
}
