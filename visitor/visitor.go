package visitor

// Visitor calls the supplied callback for each (key, element) pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K any, E any] func(func(key K, element E) (bool, error)) error
