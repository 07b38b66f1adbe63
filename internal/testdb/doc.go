// Package testdb provides utilities specifically for database testing.
//
// Integration tests open a shared connection with GetTestDB, which skips the
// test when no database URL is configured, and isolate their writes with
// WithTx:
//
//	db := testdb.GetTestDB(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		s := postgres.NewPostgresUserStore(tx, nil)
//		...
//	})
//
// The schema is brought up to date once per process using the migrations
// embedded in the postgres package.
package testdb
