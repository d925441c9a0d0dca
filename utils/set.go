package utils

// Set is a membership lookup over comparable values
type Set[T comparable] map[T]bool

func NewSet[T comparable](elements ...T) Set[T] {
	set := make(Set[T], len(elements))
	for _, element := range elements {
		set.Add(element)
	}
	return set
}

func (s Set[T]) Add(element T) {
	s[element] = true
}

func (s Set[T]) Contains(element T) bool {
	return s[element]
}
