package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Event{},
		&TicketType{},
		&Service{},
		&Ticket{},
		&CollaborationRequest{},
		&TransferRequest{},
		&TransferItem{},
		&Review{},
		&Notification{},
	)
}

// DropTables removes every table InitTables creates. Children go first.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Notification{},
		&Review{},
		&TransferItem{},
		&TransferRequest{},
		&CollaborationRequest{},
		&Ticket{},
		&Service{},
		&TicketType{},
		&Event{},
		&User{},
	)
}
