package model

// MigrateAble lists every model that gets passed to AutoMigrate.
var MigrateAble = []interface{}{
	&Application{},
}
