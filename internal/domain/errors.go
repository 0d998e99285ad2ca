package domain

import "errors"

var (
	// ErrEmptyQuery signals an empty or whitespace-only query.
	ErrEmptyQuery = errors.New("empty query")
	// ErrRetrievalUnavailable signals an embedding or index failure; the
	// caller may retry the whole query.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrNoExpression signals that no arithmetic expression could be
	// recovered from the query text.
	ErrNoExpression = errors.New("no arithmetic expression in query")
	// ErrDomainNotFound signals a lookup for an unconfigured domain.
	ErrDomainNotFound = errors.New("domain not found")
)
