package history

import "github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов (*sql.DB или *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
