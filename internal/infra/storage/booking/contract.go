package booking

import "github.com/m04kA/CleanClick-BookingService/pkg/dbmetrics"

// DBExecutor реализуется *dbmetrics.DB и транзакциями
type DBExecutor = dbmetrics.DBExecutor
