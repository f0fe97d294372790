package reservation

import (
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so that the repository joins a ctx-carried transaction
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
