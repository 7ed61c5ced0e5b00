package session

import "errors"

var (
	// ErrRecordNotFound возвращается, когда записи сессии нет
	ErrRecordNotFound = errors.New("session.storage: record not found")

	// ErrCorruptRecord возвращается, когда запись не удается десериализовать
	ErrCorruptRecord = errors.New("session.storage: corrupt record")

	// ErrInvalidKey возвращается при пустом ID сессии или ключе
	ErrInvalidKey = errors.New("session.storage: invalid session id or key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("session.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.storage: failed to scan row")
)
