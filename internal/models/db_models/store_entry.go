package db_models

// StoreEntry is one row of the string key-value store the planning and
// presentation flows hand data through. It is the server-side stand-in for
// the browser's local storage: no expiry, no transactions, last write wins.
type StoreEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"type:text"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}
