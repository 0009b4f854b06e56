package shape

import "fmt"

// Registry looks up shapes by name.
//
// It is intentionally read-only and side effect free.
//
// Expected usage:
//
//	s, ok, err := reg.Resolve("circle")
type Registry interface {
	Resolve(name string) (s Shape, ok bool, err error)
}

// MapRegistry is an in-memory, insertion-ordered catalog of named shapes.
//
// Entries are heterogeneous: anything satisfying Shape can be stored, and
// every lookup goes through the dynamic dispatch path. The zero value is
// an empty registry ready to use.
//
// MapRegistry is not safe for concurrent mutation.
type MapRegistry struct {
	items map[string]Shape
	order []string
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]Shape{}}
}

// Provide stores s under name and returns the registry for chaining.
//
// Providing an existing name replaces its shape but keeps its position.
func (r *MapRegistry) Provide(name string, s Shape) *MapRegistry {
	if r.items == nil {
		r.items = map[string]Shape{}
	}
	if _, exists := r.items[name]; !exists {
		r.order = append(r.order, name)
	}
	r.items[name] = s
	return r
}

// Get returns the shape stored under name.
func (r *MapRegistry) Get(name string) (Shape, bool) {
	s, ok := r.items[name]
	return s, ok
}

// Names returns the registered names in insertion order.
func (r *MapRegistry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *MapRegistry) Len() int { return len(r.order) }

// Resolve implements Registry. A missing name is (nil, false, nil).
func (r *MapRegistry) Resolve(name string) (Shape, bool, error) {
	s, ok := r.items[name]
	return s, ok, nil
}

// Describe returns DescribeDyn for the shape stored under name.
// See DescribeIn for the error cases.
func (r *MapRegistry) Describe(name string) (string, error) {
	return DescribeIn(r, name)
}

// DescribeIn resolves name through reg and describes it via DescribeDyn.
//
// It returns the registry's own error unchanged, UnknownShapeError for a
// missing name, and converts a panic raised by the resolved shape's Area
// into an error wrapping ErrShapePanic.
func DescribeIn(reg Registry, name string) (line string, err error) {
	s, ok, err := reg.Resolve(name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", UnknownShapeError{Name: name}
	}

	defer func() {
		if rec := recover(); rec != nil {
			line = ""
			err = fmt.Errorf("%w: %q: %v", ErrShapePanic, name, rec)
		}
	}()

	return DescribeDyn(s), nil
}
