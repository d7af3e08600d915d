package types

import "context"

/*
Producer is the contract between the cache and whatever computes values on a miss.

For this module a producer is a file decoder: it turns a path into a value.
It must behave like a pure function of path (the same path gives an equivalent
result) so that its output can be cached, and it must return an error when the
path is missing or malformed. Errors are never cached.
*/
type Producer[V any] interface {
	Produce(ctx context.Context, path string) (V, error)
}

// ProducerFunc adapts an ordinary function to Producer.
type ProducerFunc[V any] func(ctx context.Context, path string) (V, error)

func (f ProducerFunc[V]) Produce(ctx context.Context, path string) (V, error) {
	return f(ctx, path)
}
