package cleaner

import "errors"

var (
	// ErrCleanerNotFound возвращается, если клинер не существует
	ErrCleanerNotFound = errors.New("cleaner.repository: cleaner not found")

	// ErrBuildQuery возвращается, если SQL запрос не удалось построить
	ErrBuildQuery = errors.New("cleaner.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cleaner.repository: failed to execute query")

	// ErrScanRow возвращается, если строку результата не удалось прочитать
	ErrScanRow = errors.New("cleaner.repository: failed to scan row")

	// ErrEncode возвращается, если JSONB колонку не удалось закодировать или декодировать
	ErrEncode = errors.New("cleaner.repository: failed to encode column")
)
