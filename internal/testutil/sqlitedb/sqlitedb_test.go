package sqlitedb

import "testing"

func TestOpen(t *testing.T) {
	gdb := Open(t)
	for _, table := range []string{"loans", "scheduled_installments", "received_payments"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}
}
