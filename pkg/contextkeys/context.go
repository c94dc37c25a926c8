package contextkeys

// Ключи gin-контекста для идентичности вызывающего.
// Вынесены в отдельный пакет, чтобы middleware и хендлеры не расходились.
const (
	UserID   = "userID"
	UserRole = "userRole"
	UserName = "userName"
)
