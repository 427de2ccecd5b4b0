package get_availability

// Request доступность одного клинера на одну дату
type Request struct {
	CleanerID string
	Date      string // YYYY-MM-DD
}

// Response доступность каждого блока
type Response struct {
	Morning   bool
	Afternoon bool
}
