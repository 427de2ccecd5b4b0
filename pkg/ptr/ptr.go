package ptr

// Ptr возвращает указатель на v
func Ptr[T any](v T) *T {
	return &v
}
